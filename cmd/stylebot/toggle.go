package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable [pattern]",
	Short: "Enable the style for a pattern, or all styles",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v := true
		return runToggle(cmd, args, &v)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable [pattern]",
	Short: "Disable the style for a pattern, or all styles",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v := false
		return runToggle(cmd, args, &v)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [pattern]",
	Short: "Flip the enabled flag for a pattern, or all styles",
	Args:  cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggle(cmd, args, nil)
	},
}

// runToggle is shared by enable, disable, and toggle. A nil value flips.
func runToggle(cmd *cobra.Command, args []string, value *bool) error {
	all, _ := cmd.Flags().GetBool("all")
	if !all && len(args) == 0 {
		return fmt.Errorf("a pattern or --all is required")
	}

	log := newLogger()
	defer log.Sync() //nolint:errcheck

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reg, err := openRegistry(ctx, log)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	out := cmd.OutOrStdout()

	if all {
		if err := reg.ToggleAll(ctx, value); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "Toggled %d styles\n", reg.Len())
		}
		return nil
	}

	changed, err := reg.Toggle(ctx, args[0], value, true)
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("no style with rules stored for %q", args[0])
	}

	if !quiet {
		state := "disabled"
		if reg.IsEnabled(args[0]) {
			state = "enabled"
		}
		fmt.Fprintf(out, "%s is now %s\n", args[0], state)
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{enableCmd, disableCmd, toggleCmd} {
		cmd.Flags().Bool("all", false, "Apply to every stored style")
	}
}
