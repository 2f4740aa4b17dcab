package main

import (
	"fmt"

	"github.com/CxsLucyfer/stylebot"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <url>",
	Short: "Show the styles that apply to a page URL",
	Long: `Match the URL against every stored pattern and print the matching
entries plus the merged CSS that would be injected, with the primary
(longest) pattern marked.`,
	Args: cobra.ExactArgs(1),
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

		tabURL := args[0]
		page := reg.StylesForPage(tabURL)
		merged, primary := reg.MergedCSSForPage(tabURL)

		if expand, _ := cmd.Flags().GetBool("expand-imports"); expand && merged != "" {
			ex := stylebot.NewExpander(nil, log)
			expanded, err := ex.ExpandImports(cmd.Context(), merged)
			if err != nil {
				// Failed imports stay inline; report and continue.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}
			merged = expanded
		}

		if getBoolWithFallback("quiet", "quiet", false) {
			return nil
		}

		w := cmd.OutOrStdout()
		cyan := color.New(color.FgCyan, color.Bold)
		green := color.New(color.FgGreen, color.Bold)
		gray := color.New(color.FgHiBlack)

		cyan.Fprintln(w, "Style preview")
		cyan.Fprintln(w, "=============")
		fmt.Fprintf(w, "URL: %s\n\n", tabURL)

		if len(page.Styles) == 0 {
			fmt.Fprintln(w, "No enabled styles match this URL.")
			return nil
		}

		green.Fprintln(w, "MATCHES")
		for _, ps := range page.Styles {
			marker := "  "
			if ps.URL == primary {
				marker = "* "
			}
			fmt.Fprintf(w, "%s%s (%d bytes)\n", marker, ps.URL, len(ps.CSS))
		}
		gray.Fprintln(w, "\n* primary (longest match, wins conflicts)")

		fmt.Fprintln(w, "")
		green.Fprintln(w, "MERGED CSS")
		fmt.Fprintln(w, merged)
		return nil
	},
}

func init() {
	previewCmd.Flags().Bool("expand-imports", false, "Fetch and inline @import rules")
}
