package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stylebot",
	Short: "Manage per-URL custom CSS styles",
	Long: `Store, toggle, and merge CSS rule sets keyed by URL pattern, and
compute which CSS applies to a given page.

Patterns are comma-separated alternatives; glob alternatives use * and
** against the scheme-stripped URL, plain ones are substring matches:

  stylebot set "example.com/**" dark.css
  stylebot preview https://example.com/docs`,
	// Default behavior: show the style list when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runList(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".stylebot.yaml", "Config file path")
	rootCmd.PersistentFlags().String("store", "", "Styles file path (default: user config dir)")
	rootCmd.PersistentFlags().String("blocklist", "", "URL blocklist file (gitignore syntax)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
