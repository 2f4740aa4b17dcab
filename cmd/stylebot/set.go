package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <pattern> <css-file>",
	Short: "Create or overwrite the style for a pattern",
	Long: `Store the CSS file's contents under the pattern, enabled. Use "-" to
read CSS from stdin. Setting empty CSS deletes the style.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, source := args[0], args[1]

		var css []byte
		var err error
		if source == "-" {
			css, err = io.ReadAll(cmd.InOrStdin())
		} else {
			css, err = os.ReadFile(source)
		}
		if err != nil {
			return fmt.Errorf("reading CSS: %w", err)
		}

		log := newLogger()
		defer log.Sync() //nolint:errcheck

		reg, err := openRegistry(cmd.Context(), log)
		if err != nil {
			return err
		}

		if err := reg.Set(cmd.Context(), pattern, string(css)); err != nil {
			return err
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", pattern, len(css))
		}
		return nil
	},
}
