package stylebot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocklistBlocked(t *testing.T) {
	bl := NewBlocklist(
		"bank.example.com/**",
		"*.gov/**",
		"!intranet.gov/**",
	)

	cases := []struct {
		url     string
		blocked bool
	}{
		{"https://bank.example.com/login", true},
		{"https://bank.example.com/", true},
		{"https://example.com/", false},
		{"https://taxes.gov/forms", true},
		{"https://intranet.gov/wiki", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.blocked, bl.Blocked(tc.url), "url %q", tc.url)
	}
}

func TestBlocklistNilBlocksNothing(t *testing.T) {
	var bl *Blocklist
	assert.False(t, bl.Blocked("https://example.com/"))
}

func TestLoadBlocklistFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklist")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nbank.example.com/**\n"), 0o644))

	bl, err := LoadBlocklistFile(path)
	require.NoError(t, err)
	assert.True(t, bl.Blocked("https://bank.example.com/login"))
	assert.False(t, bl.Blocked("https://example.com/"))
}

func TestLoadBlocklistFileMissing(t *testing.T) {
	_, err := LoadBlocklistFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestRules(t *testing.T) {
	lines := Rules("# comment\n\nbank.example.com/**\n  *.gov/**  \n")
	assert.Equal(t, []string{"bank.example.com/**", "*.gov/**"}, lines)
}
