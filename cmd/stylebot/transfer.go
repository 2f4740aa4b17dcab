package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/CxsLucyfer/stylebot"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge styles from a JSON export",
	Long: `Merge a JSON style mapping into the store. Both wire shapes are
accepted: the current {"css": ..., "enabled": ...} shape and the legacy
selector→declarations shape, which is normalized and enabled. Use "-"
to read from stdin.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		var entries map[string]stylebot.ImportEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("decoding import file: %w", err)
		}

		log := newLogger()
		defer log.Sync() //nolint:errcheck

		reg, err := openRegistry(cmd.Context(), log)
		if err != nil {
			return err
		}

		if err := reg.Import(cmd.Context(), entries); err != nil {
			return err
		}

		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries, store now holds %d styles\n",
				len(entries), reg.Len())
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the style mapping as JSON",
	Args:  cobra.MaximumNArgs(1),
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

		data, err := json.MarshalIndent(reg.GetAll(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding styles: %w", err)
		}
		data = append(data, '\n')

		if len(args) == 0 || args[0] == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d styles to %s\n", reg.Len(), args[0])
		}
		return nil
	},
}
