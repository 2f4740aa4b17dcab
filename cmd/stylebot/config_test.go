package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylebot.yaml")
	configContent := `
store: /data/styles.json
blocklist: /data/blocklist
verbose: true
color: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "/data/styles.json", k.String("store"))
	assert.Equal(t, "/data/blocklist", k.String("blocklist"))
	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.stylebot.yaml"))

	assert.Equal(t, defaultStorePath(), storePath())
	assert.Equal(t, "", blocklistPath())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylebot.yaml")
	configContent := `
store: from-file
verbose: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("STYLEBOT_STORE", "from-env")
	t.Setenv("STYLEBOT_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env", k.String("store"))
	assert.True(t, k.Bool("verbose"))
}

func TestStorePathFromConfig(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".stylebot.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("store: /custom/styles.json\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "/custom/styles.json", storePath())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".stylebot.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "store:")
	assert.Contains(t, string(data), "blocklist:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".stylebot.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".stylebot.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".stylebot.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "store:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}
