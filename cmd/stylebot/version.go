package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc1234" ./cmd/stylebot
var (
	version = "dev"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "stylebot %s", version)
		if commit != "" {
			fmt.Fprintf(out, " (%s)", commit)
		}
		fmt.Fprintf(out, " %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
