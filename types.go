package stylebot

import (
	"context"
	"strings"
)

// Style is a CSS rule set associated with a URL pattern.
type Style struct {
	CSS     string `json:"css"`
	Enabled bool   `json:"enabled"`
}

// IsEmpty reports whether the style carries no rules. Empty styles are
// never injected and are no-ops for Toggle.
func (s Style) IsEmpty() bool {
	return strings.TrimSpace(s.CSS) == ""
}

// StyleMap maps URL patterns to styles. Absence of a key means "no style
// defined" for that pattern, which is distinct from enabled=false.
type StyleMap map[string]Style

// Clone returns an independent copy of the map.
func (m StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(m))
	for url, st := range m {
		out[url] = st
	}
	return out
}

// Tab identifies a browser tab and the URL it currently displays.
type Tab struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// PageStyle is a single registry entry that applies to a page.
type PageStyle struct {
	URL string `json:"url"`
	CSS string `json:"css"`
}

// PageStyles holds all entries applying to a page. URL is the primary
// URL: the longest matching enabled pattern, used to break merge
// conflicts. Styles are ordered shortest pattern first so the primary
// entry is merged last.
type PageStyles struct {
	Styles []PageStyle `json:"styles"`
	URL    string      `json:"url"`
}

// ComputedStyles is the merged CSS payload for a tab.
type ComputedStyles struct {
	URL string `json:"url"`
	CSS string `json:"css"`
}

// Store persists the full style map. Save writes the whole collection;
// there is no per-entry operation, matching the host key-value API.
type Store interface {
	Load(ctx context.Context) (StyleMap, error)
	Save(ctx context.Context, styles StyleMap) error
}

// Matcher decides whether a style pattern applies to a tab URL.
type Matcher interface {
	// Matches reports whether pattern applies to tabURL.
	Matches(tabURL, pattern string) bool
	// IsValidURL reports whether styles can be injected into the URL at
	// all. Non-HTML surfaces (about:, chrome:, file pickers) are not
	// stylable.
	IsValidURL(url string) bool
}

// TabNotifier delivers a computed style payload to a tab's renderer.
type TabNotifier interface {
	NotifyTab(ctx context.Context, tab Tab, payload ComputedStyles) error
}

// BrowserAction refreshes the toolbar indicator for a tab after its
// styles have been recomputed.
type BrowserAction interface {
	Update(ctx context.Context, tab Tab) error
}
