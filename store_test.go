package stylebot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	styles, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, styles)

	in := StyleMap{"example.com": {CSS: "a { color: red; }", Enabled: true}}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Loads are copies; mutating one must not leak into the store.
	out["other.example"] = Style{CSS: "b { color: blue; }"}
	again, err := s.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, again, "other.example")
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "styles.json")
	s := NewFileStore(path)

	in := StyleMap{
		"example.com":    {CSS: "a { color: red; }", Enabled: true},
		"example.com/**": {CSS: "b { color: blue; }", Enabled: false},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope", "styles.json"))

	out, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "styles.json")
	s := NewFileStore(path)

	require.NoError(t, s.Save(context.Background(), StyleMap{}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	require.Error(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	out, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}
