package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// VersionInfo holds build metadata baked in at link time.
type VersionInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform"   yaml:"platform"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:   version,
				Commit:    commit,
				BuildDate: date,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(info)
			case OutputFormatYAML:
				return StandardYAMLRenderer(info)
			default:
				fmt.Fprintf(os.Stdout, "subledger version %s\n", info.Version)
				fmt.Fprintf(os.Stdout, "  commit:     %s\n", info.Commit)
				fmt.Fprintf(os.Stdout, "  built:      %s\n", info.BuildDate)
				fmt.Fprintf(os.Stdout, "  go version: %s\n", info.GoVersion)
				fmt.Fprintf(os.Stdout, "  platform:   %s\n", info.Platform)

				return nil
			}
		},
	}
}
