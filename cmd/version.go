package cmd

import (
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Printf("folders version %s (%s/%s)\n", appVersion, runtime.GOOS, runtime.GOARCH)
		if global.verbose {
			pterm.Printf("commit %s built on %s by %s\n", appCommit, appDate, appBuiltBy)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
