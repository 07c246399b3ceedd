package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...commands.Version=v1.2.3".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{Version: Version}
		if IsVerbose() {
			info.Go = runtime.Version()
			info.Platform = runtime.GOOS + "/" + runtime.GOARCH
		}

		return output(cmd, info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version  string `json:"version" yaml:"version"`
	Go       string `json:"go,omitempty" yaml:"go,omitempty"`
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

func (v versionInfo) header() []string {
	return []string{"fixfft", v.Version}
}

func (v versionInfo) rows() [][]string {
	if v.Go == "" {
		return nil
	}

	return [][]string{{"go", v.Go}, {"platform", v.Platform}}
}
