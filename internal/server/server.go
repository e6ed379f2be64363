package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/agentstation/utc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/umleo/schedview/internal/cmd/table"
	"github.com/umleo/schedview/internal/explore"
	"github.com/umleo/schedview/internal/sources"
	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/constants"
	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/logging"
)

// dayCaser normalizes user-supplied weekday names for response echoing.
var dayCaser = cases.Title(language.English)

// Server serves the reconciled schedule views as a read-only JSON API.
type Server struct {
	explorer *explore.Explorer
	http     *http.Server
}

// New creates a Server on the given listen address.
func New(addr string, explorer *explore.Explorer) *Server {
	s := &Server{explorer: explorer}
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/campuses", s.handleCampuses)
	mux.HandleFunc("GET /v1/schedule", s.handleSchedule)
	mux.HandleFunc("GET /v1/subjects", s.handleSubjects)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.logRequests(mux)
}

// ListenAndServe blocks serving requests until shutdown.
func (s *Server) ListenAndServe() error {
	logging.Info().Str("addr", s.http.Addr).Msg("Serving schedule API")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// campusInfo is the wire shape of one campus.
type campusInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SourceFile    string `json:"source_file"`
	DayConvention string `json:"day_convention"`
}

func (s *Server) handleCampuses(w http.ResponseWriter, _ *http.Request) {
	all := campus.All()
	infos := make([]campusInfo, 0, len(all))
	for _, c := range all {
		infos = append(infos, campusInfo{
			ID:            string(c.ID),
			Name:          c.Name,
			SourceFile:    c.SourceFile,
			DayConvention: c.DayConvention,
		})
	}
	OK(w, infos)
}

// scheduleResponse is the wire shape of one filtered schedule view.
type scheduleResponse struct {
	Campus     string              `json:"campus"`
	Day        string              `json:"day,omitempty"`
	Subject    string              `json:"subject,omitempty"`
	Count      int                 `json:"count"`
	DuesLoaded bool                `json:"dues_loaded"`
	Rows       []map[string]string `json:"rows"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	campusID := query.Get("campus")
	if campusID == "" {
		BadRequest(w, "campus query parameter is required", "")
		return
	}
	day := query.Get("day")

	result, err := s.explorer.Schedule(r.Context(), explore.Request{
		Campus:  campusID,
		Day:     day,
		Subject: query.Get("subject"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := scheduleResponse{
		Campus:     string(result.Campus.ID),
		Subject:    result.Subject,
		Count:      result.Count,
		DuesLoaded: result.DuesLoaded,
		Rows:       table.ScheduleToRows(result.Table),
	}
	if day != "" {
		resp.Day = dayCaser.String(strings.ToLower(day))
	}
	OK(w, resp)
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	campusID := query.Get("campus")
	if campusID == "" {
		BadRequest(w, "campus query parameter is required", "")
		return
	}

	subjects, err := s.explorer.Subjects(r.Context(), campusID, query.Get("day"))
	if err != nil {
		writeError(w, err)
		return
	}
	OK(w, subjects)
}

// healthResponse reports process liveness and which sources have loaded.
type healthResponse struct {
	Status  string                 `json:"status"`
	Time    utc.Time               `json:"time"`
	Sources []sources.SourceStatus `json:"sources"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	OK(w, healthResponse{
		Status:  "ok",
		Time:    utc.Now(),
		Sources: s.explorer.Status(),
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.IsNotFound(err):
		NotFound(w, "not found", err.Error())
	case errors.IsValidationError(err):
		BadRequest(w, "invalid request", err.Error())
	default:
		InternalError(w, "internal error", err.Error())
	}
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("query", r.URL.RawQuery).
			Msg("Request")
		next.ServeHTTP(w, r)
	})
}
