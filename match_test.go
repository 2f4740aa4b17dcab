package stylebot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlobMatcherMatches(t *testing.T) {
	tests := []struct {
		name    string
		tabURL  string
		pattern string
		want    bool
	}{
		{
			name:    "substring match",
			tabURL:  "https://docs.google.com/document/d/abc",
			pattern: "docs.google.com",
			want:    true,
		},
		{
			name:    "substring no match",
			tabURL:  "https://example.com/",
			pattern: "docs.google.com",
			want:    false,
		},
		{
			name:    "glob across segments",
			tabURL:  "https://example.com/a/b/c",
			pattern: "example.com/**",
			want:    true,
		},
		{
			name:    "glob single segment",
			tabURL:  "https://example.com/news",
			pattern: "example.com/*",
			want:    true,
		},
		{
			name:    "glob single segment does not cross slash",
			tabURL:  "https://example.com/news/today",
			pattern: "example.com/*",
			want:    false,
		},
		{
			name:    "subdomain wildcard",
			tabURL:  "https://mail.example.com/inbox",
			pattern: "*.example.com/**",
			want:    true,
		},
		{
			name:    "comma separated alternatives, second wins",
			tabURL:  "https://example.org/page",
			pattern: "example.com/**, example.org",
			want:    true,
		},
		{
			name:    "scheme in pattern is ignored",
			tabURL:  "http://example.com/page",
			pattern: "https://example.com/**",
			want:    true,
		},
		{
			name:    "trailing slash normalized",
			tabURL:  "https://example.com/",
			pattern: "example.com",
			want:    true,
		},
		{
			name:    "empty pattern",
			tabURL:  "https://example.com/",
			pattern: "",
			want:    false,
		},
		{
			name:    "empty url",
			tabURL:  "",
			pattern: "example.com",
			want:    false,
		},
		{
			name:    "bad glob degrades to substring",
			tabURL:  "https://example.com/a[b",
			pattern: "example.com/a[b",
			want:    true,
		},
	}

	m := GlobMatcher{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Matches(tt.tabURL, tt.pattern)
			require.Equal(t, tt.want, got, "Matches(%q, %q)", tt.tabURL, tt.pattern)
		})
	}
}

func TestGlobMatcherIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "https", url: "https://example.com/page", want: true},
		{name: "http", url: "http://example.com", want: true},
		{name: "chrome internal", url: "chrome://settings", want: false},
		{name: "about page", url: "about:blank", want: false},
		{name: "file scheme", url: "file:///tmp/page.html", want: false},
		{name: "no scheme", url: "example.com/page", want: false},
		{name: "empty", url: "", want: false},
	}

	m := GlobMatcher{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, m.IsValidURL(tt.url), "IsValidURL(%q)", tt.url)
		})
	}
}
