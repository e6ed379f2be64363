package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/umleo/schedview/internal/cmd/output"
	"github.com/umleo/schedview/internal/cmd/table"
)

var subjectsFlags struct {
	campus string
	day    string
}

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subject codes taught by lecturers on a campus",
	Long: `List the distinct subject codes present in the reconciled lecturer
schedule for one campus, optionally restricted to a weekday.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		explorer, err := newExplorer()
		if err != nil {
			return err
		}

		subjects, err := explorer.Subjects(cmd.Context(), subjectsFlags.campus, subjectsFlags.day)
		if err != nil {
			return err
		}

		format := output.DetectFormat(globalFlags.Output)
		formatter := output.NewFormatter(format)

		if format == output.FormatTable || format == output.FormatWide {
			d := table.SubjectsToTableData(subjects)
			return formatter.Format(os.Stdout, output.Data{Headers: d.Headers, Rows: d.Rows})
		}
		return formatter.Format(os.Stdout, subjects)
	},
}

func init() {
	subjectsCmd.Flags().StringVarP(&subjectsFlags.campus, "campus", "c", "", "campus to list (ann-arbor, dearborn, flint)")
	subjectsCmd.Flags().StringVarP(&subjectsFlags.day, "day", "d", "", "weekday filter (monday..friday)")
	_ = subjectsCmd.MarkFlagRequired("campus")

	rootCmd.AddCommand(subjectsCmd)
}
