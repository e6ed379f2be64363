// Package explore assembles the full exploration pipeline shared by the CLI
// commands and the JSON API server: load, normalize, reconcile, drop admin
// columns, then apply the day and subject filters.
package explore

import (
	"context"
	"time"

	"github.com/umleo/schedview/internal/sources"
	"github.com/umleo/schedview/pkg/buildings"
	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/logging"
	"github.com/umleo/schedview/pkg/reconcile"
	"github.com/umleo/schedview/pkg/tabular"
)

// Explorer runs reconciliation pipelines over the cached source tables.
type Explorer struct {
	loader    *sources.Loader
	buildings *buildings.Client
}

// New creates an Explorer over the given loader and building lookup.
func New(loader *sources.Loader, b *buildings.Client) *Explorer {
	return &Explorer{loader: loader, buildings: b}
}

// Request selects one filtered schedule view.
type Request struct {
	// Campus is required; Day and Subject are optional filters.
	Campus  string
	Day     string
	Subject string
}

// Result is one reconciled, filtered schedule view.
type Result struct {
	Campus  *campus.Campus
	Day     string
	Subject string

	// Table holds the display rows after admin columns are dropped.
	Table *tabular.Table

	// Count is the number of matching class rows.
	Count int

	// DuesLoaded is false when no dues data could be read and every row
	// carries the Unknown status.
	DuesLoaded bool
}

// Schedule runs the pipeline for one campus and applies the requested
// filters.
func (e *Explorer) Schedule(ctx context.Context, req Request) (*Result, error) {
	c, err := campus.ByID(req.Campus)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithCampus(ctx, string(c.ID))

	var day time.Weekday
	filterDay := req.Day != ""
	if filterDay {
		if day, err = campus.ParseDay(req.Day); err != nil {
			return nil, err
		}
	}

	merged, duesLoaded, err := e.reconciled(ctx, c)
	if err != nil {
		return nil, err
	}

	if filterDay {
		if merged, err = c.OnDay(merged, day); err != nil {
			return nil, err
		}
	}
	merged = c.BySubject(merged, req.Subject)

	result := &Result{
		Campus:     c,
		Day:        req.Day,
		Subject:    req.Subject,
		Table:      merged,
		Count:      merged.Len(),
		DuesLoaded: duesLoaded,
	}
	logging.Ctx(ctx).Info().
		Str("day", req.Day).
		Str("subject", req.Subject).
		Int("classes", result.Count).
		Msg("Filtered schedule view")
	return result, nil
}

// Subjects returns the sorted distinct subject codes for a campus,
// optionally restricted to one weekday. It mirrors the subject dropdown of
// the dashboard: options come from the already day-filtered view.
func (e *Explorer) Subjects(ctx context.Context, campusID, dayName string) ([]string, error) {
	result, err := e.Schedule(ctx, Request{Campus: campusID, Day: dayName})
	if err != nil {
		return nil, err
	}
	return result.Table.Distinct(result.Campus.SubjectColumn), nil
}

// Status exposes the loader's per-source snapshot for the health endpoint.
func (e *Explorer) Status() []sources.SourceStatus {
	return e.loader.Status()
}

// reconciled produces the campus's merged lecturer table with admin columns
// dropped and, for Dearborn, the derived Location column attached.
func (e *Explorer) reconciled(ctx context.Context, c *campus.Campus) (*tabular.Table, bool, error) {
	raw, err := e.loader.Schedule(c)
	if err != nil {
		return nil, false, errors.WrapResource("load", "schedule", string(c.ID), err)
	}
	normalized := c.Normalize(raw)

	payroll, err := e.loader.Payroll()
	if err != nil {
		return nil, false, errors.WrapResource("load", "payroll", "", err)
	}
	dues := e.loader.Dues()

	reconciler, err := reconcile.New(payroll, reconcile.WithDues(dues))
	if err != nil {
		return nil, false, err
	}
	merged, err := reconciler.Reconcile(ctx, normalized, c.IDColumn)
	if err != nil {
		return nil, false, err
	}

	c.DropAdmin(merged)
	if err := c.AddLocation(merged, e.buildings.LookupFunc(ctx)); err != nil {
		return nil, false, err
	}
	return merged, dues != nil, nil
}
