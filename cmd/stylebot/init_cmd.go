package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylebot.yaml config file",
	Long:  `Create a .stylebot.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylebot.yaml"); err == nil && !force {
			return fmt.Errorf(".stylebot.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylebot.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylebot.yaml")
		return nil
	},
}

const defaultConfig = `# stylebot configuration

# Styles file. Empty means <user-config-dir>/stylebot/styles.json.
store: ""

# URL blocklist file, gitignore syntax against scheme-stripped URLs.
# Matching URLs never receive styles.
blocklist: ""

verbose: false
color: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
