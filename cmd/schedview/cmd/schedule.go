package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/umleo/schedview/internal/cmd/output"
	"github.com/umleo/schedview/internal/cmd/table"
	"github.com/umleo/schedview/internal/explore"
)

var scheduleFlags struct {
	campus  string
	day     string
	subject string
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the lecturer schedule for a campus",
	Long: `Show the reconciled class schedule for one campus, restricted to
lecturer-titled instructors, each row tagged with the instructor's dues
status. Optionally filter by weekday and subject code.`,
	Example: `  schedview schedule --campus dearborn --day monday
  schedview schedule --campus ann-arbor --day tue --subject SI -o json
  schedview schedule --campus flint -o wide`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVarP(&scheduleFlags.campus, "campus", "c", "", "campus to show (ann-arbor, dearborn, flint)")
	scheduleCmd.Flags().StringVarP(&scheduleFlags.day, "day", "d", "", "weekday filter (monday..friday)")
	scheduleCmd.Flags().StringVarP(&scheduleFlags.subject, "subject", "s", "", "subject code filter")
	_ = scheduleCmd.MarkFlagRequired("campus")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	explorer, err := newExplorer()
	if err != nil {
		return err
	}

	result, err := explorer.Schedule(cmd.Context(), explore.Request{
		Campus:  scheduleFlags.campus,
		Day:     scheduleFlags.day,
		Subject: scheduleFlags.subject,
	})
	if err != nil {
		return err
	}

	if !result.DuesLoaded && !globalFlags.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: no dues roster found, dues status shown as Unknown")
	}

	format := output.DetectFormat(globalFlags.Output)
	formatter := output.NewFormatter(format)

	switch format {
	case output.FormatTable, output.FormatWide:
		d := table.ScheduleToTableData(result.Table, format == output.FormatWide)
		if err := formatter.Format(os.Stdout, output.Data{Headers: d.Headers, Rows: d.Rows}); err != nil {
			return err
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(os.Stderr, "Total classes: %d\n", result.Count)
		}
		return nil
	default:
		type scheduleOut struct {
			Campus     string              `json:"campus" yaml:"campus"`
			Day        string              `json:"day,omitempty" yaml:"day,omitempty"`
			Subject    string              `json:"subject,omitempty" yaml:"subject,omitempty"`
			Count      int                 `json:"count" yaml:"count"`
			DuesLoaded bool                `json:"dues_loaded" yaml:"dues_loaded"`
			Rows       []map[string]string `json:"rows" yaml:"rows"`
		}
		return formatter.Format(os.Stdout, scheduleOut{
			Campus:     string(result.Campus.ID),
			Day:        result.Day,
			Subject:    result.Subject,
			Count:      result.Count,
			DuesLoaded: result.DuesLoaded,
			Rows:       table.ScheduleToRows(result.Table),
		})
	}
}
