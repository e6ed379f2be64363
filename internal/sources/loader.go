// Package sources loads the term extracts the reconciler runs over. Every
// source is read once per process and memoized; the files are static for a
// term, so invalidation is process restart.
package sources

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/agentstation/utc"

	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/constants"
	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/logging"
	"github.com/umleo/schedview/pkg/tabular"
)

// Loader memoizes the payroll, dues, and per-campus schedule tables.
// Loads are serialized per source by sync.Once; mu additionally guards the
// loaded fields so Status can snapshot them while loads are in flight.
type Loader struct {
	dataDir string

	payrollOnce sync.Once
	duesOnce    sync.Once

	mu         sync.Mutex
	payroll    *tabular.Table
	payrollErr error
	payrollAt  utc.Time
	dues       *tabular.Table
	duesAt     utc.Time
	schedules  map[campus.ID]*scheduleEntry
}

type scheduleEntry struct {
	once     sync.Once
	table    *tabular.Table
	err      error
	loadedAt utc.Time
}

// Option configures a Loader.
type Option func(*Loader)

// WithDataDir sets the directory the extracts are read from.
func WithDataDir(dir string) Option {
	return func(l *Loader) { l.dataDir = dir }
}

// New creates a Loader reading from the current directory by default.
func New(opts ...Option) *Loader {
	l := &Loader{
		dataDir:   ".",
		schedules: make(map[campus.ID]*scheduleEntry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DataDir returns the configured extract directory.
func (l *Loader) DataDir() string {
	return l.dataDir
}

// Payroll returns the monthly payroll extract. A missing payroll file is
// fatal: nothing can be reconciled without it.
func (l *Loader) Payroll() (*tabular.Table, error) {
	l.payrollOnce.Do(func() {
		path := filepath.Join(l.dataDir, constants.MonthlyFile)
		t, err := tabular.ReadCSVFile(path)

		l.mu.Lock()
		l.payroll, l.payrollErr = t, err
		l.payrollAt = utc.Now()
		l.mu.Unlock()

		if err == nil {
			logging.Debug().
				Str("path", path).
				Int("rows", t.Len()).
				Msg("Loaded monthly payroll extract")
		}
	})
	return l.payroll, l.payrollErr
}

// Dues returns the combined dues roster, or nil when no dues file could be
// read. Missing dues files degrade the dues status to Unknown downstream and
// are surfaced as warnings, never as errors.
func (l *Loader) Dues() *tabular.Table {
	l.duesOnce.Do(func() {
		dues := l.loadDues()

		l.mu.Lock()
		l.dues = dues
		l.duesAt = utc.Now()
		l.mu.Unlock()
	})
	return l.dues
}

func (l *Loader) loadDues() *tabular.Table {
	var combined *tabular.Table
	for _, name := range []string{constants.DuesFile, constants.DuesGradFile} {
		path := filepath.Join(l.dataDir, name)
		t, err := tabular.ReadCSVFile(path)
		if err != nil {
			logging.Warn().
				Str("path", path).
				Err(err).
				Msg("Dues file not found")
			continue
		}
		if combined == nil {
			combined = t
		} else {
			combined = tabular.Concat(combined, t)
		}
	}
	return combined
}

// Schedule returns the raw schedule extract for a campus. Callers normalize
// the returned table through the campus descriptor; the cached copy is never
// mutated.
func (l *Loader) Schedule(c *campus.Campus) (*tabular.Table, error) {
	l.mu.Lock()
	entry, ok := l.schedules[c.ID]
	if !ok {
		entry = &scheduleEntry{}
		l.schedules[c.ID] = entry
	}
	l.mu.Unlock()

	entry.once.Do(func() {
		path := filepath.Join(l.dataDir, c.SourceFile)
		t, err := tabular.ReadCSVFile(path)

		l.mu.Lock()
		entry.table, entry.err = t, err
		entry.loadedAt = utc.Now()
		l.mu.Unlock()

		if err == nil {
			logging.Debug().
				Str("campus", string(c.ID)).
				Str("path", path).
				Int("rows", t.Len()).
				Msg("Loaded campus schedule extract")
		}
	})
	return entry.table, entry.err
}

// SourceStatus describes one loaded source for the status endpoint.
type SourceStatus struct {
	Name     string   `json:"name"`
	File     string   `json:"file"`
	Loaded   bool     `json:"loaded"`
	Rows     int      `json:"rows"`
	LoadedAt utc.Time `json:"loaded_at"`
	Error    string   `json:"error,omitempty"`
}

// Status reports what has been loaded so far. Sources not yet requested are
// omitted; the loader never loads eagerly on behalf of a status call.
func (l *Loader) Status() []SourceStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	var statuses []SourceStatus

	if !l.payrollAt.IsZero() {
		s := SourceStatus{
			Name:     "payroll",
			File:     constants.MonthlyFile,
			Loaded:   l.payrollErr == nil,
			LoadedAt: l.payrollAt,
		}
		if l.payroll != nil {
			s.Rows = l.payroll.Len()
		}
		if l.payrollErr != nil {
			s.Error = l.payrollErr.Error()
		}
		statuses = append(statuses, s)
	}

	if !l.duesAt.IsZero() {
		s := SourceStatus{
			Name:     "dues",
			File:     constants.DuesFile + "+" + constants.DuesGradFile,
			Loaded:   l.dues != nil,
			LoadedAt: l.duesAt,
		}
		if l.dues != nil {
			s.Rows = l.dues.Len()
		}
		statuses = append(statuses, s)
	}

	for _, c := range campus.All() {
		entry, ok := l.schedules[c.ID]
		if !ok || entry.loadedAt.IsZero() {
			continue
		}
		s := SourceStatus{
			Name:     string(c.ID),
			File:     c.SourceFile,
			Loaded:   entry.err == nil,
			LoadedAt: entry.loadedAt,
		}
		if entry.table != nil {
			s.Rows = entry.table.Len()
		}
		if entry.err != nil {
			s.Error = entry.err.Error()
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// Verify reports whether the data directory exists at all, to give commands
// a clearer failure than per-file open errors.
func (l *Loader) Verify() error {
	info, err := os.Stat(l.dataDir)
	if err != nil {
		return errors.WrapIO("open", l.dataDir, err)
	}
	if !info.IsDir() {
		return errors.NewValidationError("data-dir", l.dataDir, "not a directory")
	}
	return nil
}
