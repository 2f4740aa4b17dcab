package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <pattern>",
	Short: "Print the CSS stored for a pattern",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync() //nolint:errcheck

		reg, err := openRegistry(cmd.Context(), log)
		if err != nil {
			return err
		}

		st, ok := reg.Get(args[0])
		if !ok {
			return fmt.Errorf("no style stored for %q", args[0])
		}

		useColors := shouldUseColors()
		out := cmd.OutOrStdout()
		state := render(styleRed, "disabled", useColors)
		if st.Enabled {
			state = render(styleGreen, "enabled", useColors)
		}
		fmt.Fprintf(out, "%s %s\n\n", render(styleCyan, args[0], useColors), state)
		fmt.Fprintln(out, st.CSS)
		return nil
	},
}
