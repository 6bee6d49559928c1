// ABOUTME: CLI command printing build version.
// ABOUTME: Version is set via ldflags on release builds, "dev" otherwise.
package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "dev" {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
				v = info.Main.Version
			}
		}
		fmt.Printf("healthflow %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
