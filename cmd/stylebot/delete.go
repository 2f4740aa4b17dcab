package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [pattern]",
	Aliases: []string{"rm"},
	Short:   "Delete the style for a pattern, or all styles",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return fmt.Errorf("a pattern or --all is required")
		}

		log := newLogger()
		defer log.Sync() //nolint:errcheck

		reg, err := openRegistry(cmd.Context(), log)
		if err != nil {
			return err
		}

		quiet := getBoolWithFallback("quiet", "quiet", false)
		out := cmd.OutOrStdout()

		if all {
			n := reg.Len()
			if err := reg.DeleteAll(cmd.Context()); err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(out, "Deleted %d styles\n", n)
			}
			return nil
		}

		if err := reg.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "Deleted %s\n", args[0])
		}
		return nil
	},
}

func init() {
	deleteCmd.Flags().Bool("all", false, "Delete every stored style")
}
