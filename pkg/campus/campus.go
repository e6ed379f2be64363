// Package campus describes the three campus schedule extracts and the static
// translation each needs before reconciliation: header renames onto the
// canonical schema, the admin/PII columns dropped before display, and the
// campus's day-presence convention.
//
// The three day-indicator conventions ("Y", the {M,T,W,R,F,X} letter codes,
// and "X") are deliberately kept separate and literal. They are undocumented
// upstream, and unifying them risks silently changing which rows count as
// meeting on a given day.
package campus

import (
	"strings"
	"time"

	"github.com/umleo/schedview/pkg/errors"
	"github.com/umleo/schedview/pkg/tabular"
)

// ID identifies a campus.
type ID string

// Known campus identifiers.
const (
	AnnArbor ID = "ann-arbor"
	Dearborn ID = "dearborn"
	Flint    ID = "flint"
)

// Campus holds the static translation tables for one campus extract.
type Campus struct {
	ID   ID
	Name string

	// SourceFile is the extract file name under the data directory.
	SourceFile string

	// IDColumn is the instructor identifier column after normalization.
	IDColumn string

	// SubjectColumn is the subject-code column after normalization.
	SubjectColumn string

	// Rename maps source headers onto the canonical schema.
	Rename map[string]string

	// DropColumns are removed from the merged table before display.
	DropColumns []string

	// DayColumns maps a weekday to the extract's indicator column.
	DayColumns map[time.Weekday]string

	// DayConvention is the human-readable day-presence convention, shown
	// by the campuses listing.
	DayConvention string

	// dayPresent reports whether an indicator cell means the class meets
	// on that day.
	dayPresent func(cell string) bool

	// cleanHeaders trims headers and drops blank-only columns before
	// renaming. Only the Dearborn extract needs it.
	cleanHeaders bool

	// DeriveLocation indicates the campus derives a composite Location
	// from building code and room.
	DeriveLocation bool
}

// Weekdays are the days the dashboard filters on, in display order.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// All returns the campuses in display order.
func All() []*Campus {
	return []*Campus{annArbor, dearborn, flint}
}

// ByID resolves a campus from a user-supplied identifier. Matching is
// case-insensitive and tolerant of spacing ("Ann Arbor", "ann-arbor", "aa").
func ByID(id string) (*Campus, error) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")

	switch normalized {
	case string(AnnArbor), "annarbor", "aa":
		return annArbor, nil
	case string(Dearborn), "db":
		return dearborn, nil
	case string(Flint), "fl":
		return flint, nil
	}
	return nil, errors.NewNotFoundError("campus", id)
}

// ParseDay resolves a user-supplied weekday name.
func ParseDay(day string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	for _, wd := range Weekdays {
		name := strings.ToLower(wd.String())
		if normalized == name || (len(normalized) >= 3 && strings.HasPrefix(name, normalized)) {
			return wd, nil
		}
	}
	return 0, errors.NewValidationError("day", day, "expected a weekday Monday through Friday")
}

// Normalize returns a copy of the raw extract translated onto the canonical
// schema. The cached raw table is never mutated.
func (c *Campus) Normalize(raw *tabular.Table) *tabular.Table {
	t := raw.Clone()
	if c.cleanHeaders {
		t.TrimHeaders()
		t.DropEmptyColumns()
	}
	if len(c.Rename) > 0 {
		t.Rename(c.Rename)
	}
	return t
}

// DropAdmin removes the campus's administrative and PII columns in place.
// Missing names are ignored; the lists cover the union of schedule and
// payroll fields.
func (c *Campus) DropAdmin(t *tabular.Table) {
	t.Drop(c.DropColumns...)
}

// DayPresent reports whether an indicator cell counts as "meets on that day"
// under this campus's convention.
func (c *Campus) DayPresent(cell string) bool {
	return c.dayPresent(cell)
}

// OnDay returns the rows meeting on the given weekday. A missing indicator
// column means the extract schema changed underneath us and is surfaced as a
// validation error rather than silently matching nothing.
func (c *Campus) OnDay(t *tabular.Table, day time.Weekday) (*tabular.Table, error) {
	col, ok := c.DayColumns[day]
	if !ok {
		return nil, errors.NewValidationError("day", day.String(), "no indicator column for weekday")
	}
	if !t.HasColumn(col) {
		return nil, errors.NewValidationError(col, nil, "day indicator column missing from "+c.Name+" extract")
	}
	return t.Select(func(i int) bool {
		return c.dayPresent(t.Value(i, col))
	}), nil
}

// BySubject returns the rows whose subject code equals subject exactly.
// An empty subject keeps every row.
func (c *Campus) BySubject(t *tabular.Table, subject string) *tabular.Table {
	if subject == "" {
		return t
	}
	return t.Select(func(i int) bool {
		return t.Value(i, c.SubjectColumn) == subject
	})
}

// AddLocation derives the composite Location column from the building code
// and room columns using the supplied building-name lookup. Campuses without
// location derivation return immediately.
func (c *Campus) AddLocation(t *tabular.Table, lookup func(code string) string) error {
	if !c.DeriveLocation {
		return nil
	}
	values := make([]string, t.Len())
	for i := range values {
		bldg := t.Value(i, "Bldg")
		room := t.Value(i, "Room")
		name := bldg
		if bldg != "" {
			name = lookup(bldg)
		}
		values[i] = strings.TrimSpace(name + " " + room)
	}
	return t.AddColumn("Location", values)
}
