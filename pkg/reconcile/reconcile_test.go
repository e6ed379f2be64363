package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umleo/schedview/pkg/reconcile"
	"github.com/umleo/schedview/pkg/tabular"
)

func payrollFixture() *tabular.Table {
	payroll := tabular.New([]string{"UM ID", "Job Title", "Employee Last Name"})
	payroll.AppendRow([]string{"12345", "LEO Lecturer I", "Rivera"})
	payroll.AppendRow([]string{"22222", "Professor", "Chen"})
	payroll.AppendRow([]string{"33333", "LEO Intermittent Lecturer", "Okafor"})
	payroll.AppendRow([]string{"44444", "  ", "Blank"})
	return payroll
}

func campusFixture() *tabular.Table {
	schedule := tabular.New([]string{"Class Instr ID", "Subject"})
	schedule.AppendRow([]string{"12345", "MATH"})
	schedule.AppendRow([]string{"22222", "HIST"})
	schedule.AppendRow([]string{"abc", "SI"})
	schedule.AppendRow([]string{"33333", "ECON"})
	schedule.AppendRow([]string{"44444", "PHYS"})
	schedule.AppendRow([]string{"55555", "CHEM"})
	return schedule
}

func duesFixture() *tabular.Table {
	dues := tabular.New([]string{"UM ID", "Name"})
	dues.AppendRow([]string{"12345", "Rivera"})
	dues.AppendRow([]string{"98765", "Someone Else"})
	return dues
}

func TestReconcileKeepsOnlyLecturers(t *testing.T) {
	r, err := reconcile.New(payrollFixture(), reconcile.WithDues(duesFixture()))
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	// Only the two LEO-titled instructors survive: the professor, the
	// blank title, the unmatched numeric ID, and the non-numeric ID all
	// drop out.
	require.Equal(t, 2, merged.Len())
	assert.Equal(t, "MATH", merged.Value(0, "Subject"))
	assert.Equal(t, "LEO Lecturer I", merged.Value(0, "Job Title"))
	assert.Equal(t, "ECON", merged.Value(1, "Subject"))
	assert.Equal(t, "LEO Intermittent Lecturer", merged.Value(1, "Job Title"))
}

func TestReconcileJobTitleFromPayroll(t *testing.T) {
	r, err := reconcile.New(payrollFixture(), reconcile.WithDues(duesFixture()))
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	for i := 0; i < merged.Len(); i++ {
		assert.Equal(t, "LEO", merged.Value(i, "Job Title")[:3])
	}
	assert.Equal(t, "Rivera", merged.Value(0, "Employee Last Name"))
}

func TestReconcileCaseInsensitivePrefix(t *testing.T) {
	payroll := tabular.New([]string{"UM ID", "Job Title"})
	payroll.AppendRow([]string{"1", "leo lecturer iv"})
	payroll.AppendRow([]string{"2", " Leo Adjunct Lecturer "})
	payroll.AppendRow([]string{"3", "Leonardo Impersonator"})

	schedule := tabular.New([]string{"ID", "Subject"})
	schedule.AppendRow([]string{"1", "A"})
	schedule.AppendRow([]string{"2", "B"})
	schedule.AppendRow([]string{"3", "C"})

	r, err := reconcile.New(payroll)
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), schedule, "ID")
	require.NoError(t, err)

	// Prefix match is deliberately a plain prefix: "Leonardo" matches too,
	// exactly as the payroll title filter has always behaved.
	assert.Equal(t, 3, merged.Len())
}

func TestReconcileDuesStatus(t *testing.T) {
	r, err := reconcile.New(payrollFixture(), reconcile.WithDues(duesFixture()))
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	require.Equal(t, 2, merged.Len())
	assert.Equal(t, "Paid", merged.Value(0, "Dues Status"))
	assert.Equal(t, "Not Paid", merged.Value(1, "Dues Status"))
}

func TestReconcileNoDuesDataMarksUnknown(t *testing.T) {
	r, err := reconcile.New(payrollFixture())
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	require.Equal(t, 2, merged.Len())
	for i := 0; i < merged.Len(); i++ {
		assert.Equal(t, "Unknown", merged.Value(i, "Dues Status"))
	}
}

func TestReconcileDuesTableWithoutIDColumn(t *testing.T) {
	dues := tabular.New([]string{"Name"})
	dues.AppendRow([]string{"Rivera"})

	r, err := reconcile.New(payrollFixture(), reconcile.WithDues(dues))
	require.NoError(t, err)

	merged, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	for i := 0; i < merged.Len(); i++ {
		assert.Equal(t, "Unknown", merged.Value(i, "Dues Status"))
	}
}

func TestReconcileIdempotent(t *testing.T) {
	r, err := reconcile.New(payrollFixture(), reconcile.WithDues(duesFixture()))
	require.NoError(t, err)

	first, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)
	second, err := r.Reconcile(context.Background(), campusFixture(), "Class Instr ID")
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	assert.Equal(t, first.Columns(), second.Columns())
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.Row(i), second.Row(i))
	}
}

func TestReconcileMissingIDColumn(t *testing.T) {
	r, err := reconcile.New(payrollFixture())
	require.NoError(t, err)

	_, err = r.Reconcile(context.Background(), campusFixture(), "No Such Column")
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	_, err := reconcile.New(nil)
	assert.Error(t, err)

	noID := tabular.New([]string{"Job Title"})
	_, err = reconcile.New(noID)
	assert.Error(t, err)
}
