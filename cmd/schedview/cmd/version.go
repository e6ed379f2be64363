package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/umleo/schedview/internal/cmd/output"
)

// versionInfo is the structured shape of the version output.
type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := versionInfo{
			Version:   Version,
			Commit:    Commit,
			Date:      Date,
			GoVersion: runtime.Version(),
			Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		}

		format := output.DetectFormat(globalFlags.Output)
		if format == output.FormatTable || format == output.FormatWide {
			cmd.Printf("schedview %s (commit %s, built %s, %s, %s)\n",
				info.Version, info.Commit, info.Date, info.GoVersion, info.Platform)
			return nil
		}
		return output.NewFormatter(format).Format(os.Stdout, info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
