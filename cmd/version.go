package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected at link time
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// displayVersion normalizes the build version, e.g. "v1.2" becomes "1.2.0".
// Non-release builds are reported unchanged.
func displayVersion() string {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return version
	}
	return v.String()
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wct version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wct %s (built %s)\n", displayVersion(), buildTime)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
