package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".stylebot.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (STYLEBOT_* prefix)
	if err := k.Load(env.Provider("STYLEBOT_", ".", func(s string) string {
		// STYLEBOT_STORE -> store
		// STYLEBOT_PREVIEW_EXPAND_IMPORTS -> preview.expand.imports
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STYLEBOT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// storePath resolves the styles file path from config, falling back to
// the user config directory.
func storePath() string {
	if p := getStringWithFallback("store", "store", ""); p != "" {
		return p
	}
	return defaultStorePath()
}

// defaultStorePath returns <user-config-dir>/stylebot/styles.json, or a
// dotfile in the working directory when the config dir is unknown.
func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".stylebot-styles.json"
	}
	return filepath.Join(dir, "stylebot", "styles.json")
}

// blocklistPath resolves the blocklist file path; "" means no blocklist.
func blocklistPath() string {
	return getStringWithFallback("blocklist", "blocklist", "")
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
