// Package reconcile implements the record reconciler: it joins a normalized
// campus schedule against the monthly payroll extract, keeps only
// instructional staff holding a LEO lecturer title, and attaches a dues
// payment status from the combined dues roster.
package reconcile

import (
	"context"
	"strings"

	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/logging"
	"github.com/umleo/schedview/pkg/tabular"
)

// LEOPrefix is the case-insensitive job-title prefix identifying lecturers.
// Titles not starting with it are dropped from every merged view.
const LEOPrefix = "leo"

// Canonical column names shared by the payroll and dues extracts.
const (
	// PayrollIDColumn keys both the payroll and dues extracts.
	PayrollIDColumn = "UM ID"

	// JobTitleColumn is the payroll job title attached by the join.
	JobTitleColumn = "Job Title"

	// DuesStatusColumn is added to every reconciled row.
	DuesStatusColumn = "Dues Status"
)

// DuesStatus is the derived membership flag attached to each merged row.
type DuesStatus string

// The three possible dues statuses. Unknown applies only when no dues data
// could be loaded at all; otherwise every row is Paid or NotPaid.
const (
	Paid    DuesStatus = "Paid"
	NotPaid DuesStatus = "Not Paid"
	Unknown DuesStatus = "Unknown"
)

// Reconciler joins campus schedules against payroll and dues extracts.
// It is read-only over its inputs and safe for repeated use.
type Reconciler struct {
	payroll *tabular.Table
	dues    *tabular.Table
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDues supplies the combined dues roster. A nil table means no dues data
// could be loaded and every reconciled row is marked Unknown.
func WithDues(dues *tabular.Table) Option {
	return func(r *Reconciler) { r.dues = dues }
}

// New creates a Reconciler over the given monthly payroll extract.
func New(payroll *tabular.Table, opts ...Option) (*Reconciler, error) {
	if payroll == nil {
		return nil, errors.NewValidationError("payroll", nil, "payroll table is required")
	}
	if !payroll.HasColumn(PayrollIDColumn) {
		return nil, errors.NewValidationError(PayrollIDColumn, nil, "payroll table missing identifier column")
	}

	r := &Reconciler{payroll: payroll}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Reconcile left-joins the campus rows to payroll on numeric identifier
// equality, retains only rows whose job title carries the LEO prefix, and
// attaches a dues status to each. Row order follows the campus input order.
func (r *Reconciler) Reconcile(ctx context.Context, campusTable *tabular.Table, idColumn string) (*tabular.Table, error) {
	log := logging.Ctx(ctx)

	if !campusTable.HasColumn(idColumn) {
		return nil, errors.NewValidationError(idColumn, nil, "identifier column missing from campus table")
	}

	merged, err := tabular.LeftJoin(campusTable, r.payroll, idColumn, PayrollIDColumn)
	if err != nil {
		return nil, errors.WrapResource("reconcile", "schedule", idColumn, err)
	}

	lecturers := merged.Select(func(i int) bool {
		return isLecturerTitle(merged.Value(i, JobTitleColumn))
	})

	log.Debug().
		Int("campus_rows", campusTable.Len()).
		Int("merged_rows", merged.Len()).
		Int("lecturer_rows", lecturers.Len()).
		Msg("Reconciled campus schedule against payroll")

	if err := r.attachDuesStatus(ctx, lecturers); err != nil {
		return nil, err
	}
	return lecturers, nil
}

// isLecturerTitle reports whether a job title, trimmed and lower-cased, is
// non-empty and starts with the LEO prefix.
func isLecturerTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(trimmed), LEOPrefix)
}

// attachDuesStatus adds the Dues Status column. Membership is tested on the
// payroll identifier carried through the join.
func (r *Reconciler) attachDuesStatus(ctx context.Context, t *tabular.Table) error {
	log := logging.Ctx(ctx)
	values := make([]string, t.Len())

	if r.dues == nil || !r.dues.HasColumn(PayrollIDColumn) {
		log.Debug().Msg("No dues data loaded, marking every row Unknown")
		for i := range values {
			values[i] = string(Unknown)
		}
		return t.AddColumn(DuesStatusColumn, values)
	}

	members := make(map[int64]bool, r.dues.Len())
	for i := 0; i < r.dues.Len(); i++ {
		if id, ok := tabular.ParseID(r.dues.Value(i, PayrollIDColumn)); ok {
			members[id] = true
		}
	}

	for i := range values {
		id, ok := tabular.ParseID(t.Value(i, PayrollIDColumn))
		if ok && members[id] {
			values[i] = string(Paid)
		} else {
			values[i] = string(NotPaid)
		}
	}
	return t.AddColumn(DuesStatusColumn, values)
}
