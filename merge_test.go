package stylebot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeForcesImportant(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", "body { color: red; margin: 0; }")
	assert.Contains(t, out, "color: red !important")
	assert.Contains(t, out, "margin: 0 !important")
}

func TestMergeDoesNotDoubleImportant(t *testing.T) {
	m := NewMerger(nil)

	cases := map[string]string{
		"plain marker":  "a { color: blue !important; }",
		"spaced marker": "a { color: blue ! important; }",
		"upper marker":  "a { color: blue !IMPORTANT; }",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			out := m.Merge("", src)
			assert.Equal(t, 1, strings.Count(strings.ToLower(out), "important"),
				"merged %q must carry exactly one marker: %q", src, out)
		})
	}
}

func TestMergeAppendsInOrder(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", "a { color: red; }")
	out = m.Merge(out, "a { color: blue; }")

	red := strings.Index(out, "red")
	blue := strings.Index(out, "blue")
	assert.True(t, red >= 0 && blue >= 0)
	assert.Less(t, red, blue, "later sources must land after earlier ones")
}

func TestMergeEmptySource(t *testing.T) {
	m := NewMerger(nil)

	assert.Equal(t, "a { color: red; }", m.Merge("a { color: red; }", ""))
	assert.Equal(t, "a { color: red; }", m.Merge("a { color: red; }", "  \n\t"))
}

func TestMergeIntoEmptyDestination(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("  ", "a { color: red; }")
	assert.False(t, strings.HasPrefix(out, "\n"), "merged output should not start with the separator")
	assert.Contains(t, out, "color: red !important")
}

func TestMergeSelectorGroups(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", "h1, h2, h3 { font-weight: bold; }")
	assert.Contains(t, out, "h1")
	assert.Contains(t, out, "h2")
	assert.Contains(t, out, "h3")
	assert.Contains(t, out, "font-weight: bold !important")
}

func TestMergeMediaQuery(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", "@media (max-width: 600px) { body { font-size: 14px; } }")
	assert.Contains(t, out, "@media")
	assert.Contains(t, out, "font-size: 14px !important")
}

func TestMergeCustomPropertyUntouched(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", ":root { --accent: #ff0000; }")
	assert.Contains(t, out, "--accent")
	assert.NotContains(t, out, "--accent: #ff0000 !important")
}

func TestMergeDropsComments(t *testing.T) {
	m := NewMerger(nil)

	out := m.Merge("", "/* note */ a { color: red; }")
	assert.NotContains(t, out, "note")
	assert.Contains(t, out, "color: red !important")
}

func TestStripImportant(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"blue !important", "blue"},
		{"blue ! important", "blue"},
		{"blue !IMPORTANT", "blue"},
		{"blue", "blue"},
		{"important", "important"},
		{"url(important)", "url(important)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripImportant(tc.in), "input %q", tc.in)
	}
}
