package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		u := newUI(cmd.OutOrStdout())

		u.Println(
			u.Header("RU Bank"),
			"",
			u.KeyValue("Version", Version),
			u.KeyValue("Git Commit", GitCommit),
			u.KeyValue("Built", BuildDate),
			u.KeyValue("Go Version", runtime.Version()),
			u.KeyValue("OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)),
		)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
