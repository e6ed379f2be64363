package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umleo/schedview/internal/cmd/table"
	"github.com/umleo/schedview/pkg/campus"
	"github.com/umleo/schedview/pkg/tabular"
)

func mergedFixture() *tabular.Table {
	t := tabular.New([]string{"Subject", "Catalog Nbr", "Job Title", "Dues Status", "Obscure Admin Field"})
	t.AppendRow([]string{"MATH", "101", "LEO Lecturer I", "Paid", "x"})
	t.AppendRow([]string{"SI", "", "LEO Lecturer II", "Not Paid", "y"})
	return t
}

func TestScheduleToTableDataDefaultColumns(t *testing.T) {
	data := table.ScheduleToTableData(mergedFixture(), false)

	assert.Equal(t, []string{"Subject", "Catalog Nbr", "Job Title", "Dues Status"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"MATH", "101", "LEO Lecturer I", "Paid"}, data.Rows[0])
	// Blank cells render as dashes.
	assert.Equal(t, "-", data.Rows[1][1])
}

func TestScheduleToTableDataWide(t *testing.T) {
	data := table.ScheduleToTableData(mergedFixture(), true)

	assert.Contains(t, data.Headers, "Obscure Admin Field")
	assert.Len(t, data.Headers, 5)
}

func TestScheduleToRows(t *testing.T) {
	rows := table.ScheduleToRows(mergedFixture())

	require.Len(t, rows, 2)
	assert.Equal(t, "MATH", rows[0]["Subject"])
	assert.Equal(t, "Not Paid", rows[1]["Dues Status"])
}

func TestCampusesToTableData(t *testing.T) {
	data := table.CampusesToTableData(campus.All())

	require.Len(t, data.Rows, 3)
	assert.Equal(t, "ann-arbor", data.Rows[0][0])
	assert.Equal(t, "Dearborn", data.Rows[1][1])
}

func TestSubjectsToTableData(t *testing.T) {
	data := table.SubjectsToTableData([]string{"BIO", "MATH"})

	assert.Equal(t, []string{"SUBJECT"}, data.Headers)
	require.Len(t, data.Rows, 2)
}
