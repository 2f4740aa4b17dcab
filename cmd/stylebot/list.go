package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored styles",
	Long:    `Show every stored style with its pattern, enabled state, and CSS size.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runList(cmd)
	},
}

func runList(cmd *cobra.Command) error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	reg, err := openRegistry(cmd.Context(), log)
	if err != nil {
		return err
	}

	styles := reg.GetAll()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	if quiet {
		return nil
	}

	useColors := shouldUseColors()
	out := cmd.OutOrStdout()

	if len(styles) == 0 {
		fmt.Fprintln(out, "No styles stored.")
		fmt.Fprintln(out, render(styleGray, "Hint: stylebot set \"example.com/**\" style.css", useColors))
		return nil
	}

	patterns := make([]string, 0, len(styles))
	for url := range styles {
		patterns = append(patterns, url)
	}
	sort.Strings(patterns)

	enabled := 0
	for _, url := range patterns {
		st := styles[url]
		marker := render(styleRed, "off", useColors)
		if st.Enabled {
			marker = render(styleGreen, "on ", useColors)
			enabled++
		}
		fmt.Fprintf(out, "%s  %s  %s\n",
			marker,
			render(styleCyan, url, useColors),
			render(styleGray, fmt.Sprintf("(%d bytes)", len(st.CSS)), useColors))
	}

	fmt.Fprintf(out, "\n%d styles, %d enabled\n", len(styles), enabled)
	return nil
}
