package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/umleo/schedview/internal/cmd/output"
	"github.com/umleo/schedview/internal/cmd/table"
	"github.com/umleo/schedview/pkg/campus"
)

var campusesCmd = &cobra.Command{
	Use:   "campuses",
	Short: "List the known campuses",
	Long:  `List the campuses schedview knows how to load, with their source files and day conventions.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		all := campus.All()

		format := output.DetectFormat(globalFlags.Output)
		formatter := output.NewFormatter(format)

		if format == output.FormatTable || format == output.FormatWide {
			d := table.CampusesToTableData(all)
			return formatter.Format(os.Stdout, output.Data{Headers: d.Headers, Rows: d.Rows})
		}

		type campusInfo struct {
			ID            string `json:"id" yaml:"id"`
			Name          string `json:"name" yaml:"name"`
			SourceFile    string `json:"source_file" yaml:"source_file"`
			DayConvention string `json:"day_convention" yaml:"day_convention"`
		}
		infos := make([]campusInfo, 0, len(all))
		for _, c := range all {
			infos = append(infos, campusInfo{
				ID:            string(c.ID),
				Name:          c.Name,
				SourceFile:    c.SourceFile,
				DayConvention: c.DayConvention,
			})
		}
		return formatter.Format(os.Stdout, infos)
	},
}

func init() {
	rootCmd.AddCommand(campusesCmd)
}
