// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/tabular"
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers []string
	Rows    [][]string
}

// preferredColumns is the default visible subset for the schedule view, in
// display order. Columns the merged table lacks are skipped; wide mode shows
// everything.
var preferredColumns = []string{
	"Subject",
	"Catalog Nbr",
	"Crse Descr",
	"Course Title",
	"First",
	"Last",
	"Class Instr Name",
	"Job Title",
	"Dues Status",
	"Location",
	"Bldg",
	"Room",
	"Facility Descr",
	"Meeting Time Start",
	"Meeting Time End",
}

// ScheduleToTableData converts a merged schedule table to table format.
func ScheduleToTableData(t *tabular.Table, wide bool) Data {
	cols := t.Columns()
	if !wide {
		visible := make([]string, 0, len(preferredColumns))
		for _, c := range preferredColumns {
			if t.HasColumn(c) {
				visible = append(visible, c)
			}
		}
		if len(visible) > 0 {
			cols = visible
		}
	}

	rows := make([][]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		row := make([]string, len(cols))
		for j, c := range cols {
			cell := t.Value(i, c)
			if cell == "" {
				cell = "-"
			}
			row[j] = cell
		}
		rows = append(rows, row)
	}

	return Data{Headers: cols, Rows: rows}
}

// ScheduleToRows converts a merged schedule table to row maps for structured
// output formats.
func ScheduleToRows(t *tabular.Table) []map[string]string {
	rows := make([]map[string]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		rows = append(rows, t.RowMap(i))
	}
	return rows
}

// CampusesToTableData converts the campus registry to table format.
func CampusesToTableData(campuses []*campus.Campus) Data {
	headers := []string{"ID", "NAME", "SOURCE FILE", "DAY CONVENTION"}

	rows := make([][]string, 0, len(campuses))
	for _, c := range campuses {
		rows = append(rows, []string{
			string(c.ID),
			c.Name,
			c.SourceFile,
			c.DayConvention,
		})
	}

	return Data{Headers: headers, Rows: rows}
}

// SubjectsToTableData converts a subject list to table format.
func SubjectsToTableData(subjects []string) Data {
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, []string{s})
	}
	return Data{Headers: []string{"SUBJECT"}, Rows: rows}
}
