package stylebot

import (
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobMatcher is the default Matcher. A style pattern is a
// comma-separated list of alternatives. Alternatives containing glob
// metacharacters are matched with doublestar semantics (`*` within a
// path segment, `**` across segments) against the tab URL with its
// scheme stripped; plain alternatives are substring matches.
//
//	docs.google.com            matches any URL containing it
//	example.com/**             matches every page under example.com
//	*.example.com/*, example.com   alternatives
type GlobMatcher struct{}

// globChars are the metacharacters that switch an alternative from
// substring matching to glob matching.
const globChars = "*?[{"

// Matches reports whether pattern applies to tabURL.
func (GlobMatcher) Matches(tabURL, pattern string) bool {
	if tabURL == "" || pattern == "" {
		return false
	}

	target := normalizeURL(tabURL)

	for _, alt := range strings.Split(pattern, ",") {
		alt = normalizeURL(alt)
		if alt == "" {
			continue
		}

		if strings.ContainsAny(alt, globChars) {
			// Bad glob syntax degrades to a substring check rather
			// than dropping the alternative.
			ok, err := doublestar.Match(alt, target)
			if err == nil {
				if ok {
					return true
				}
				continue
			}
		}

		if strings.Contains(target, alt) {
			return true
		}
	}

	return false
}

// IsValidURL reports whether the URL names a stylable HTML page. Only
// http and https schemes qualify; everything else (about:, chrome:,
// file:, extension pages) is treated as "feature inactive".
func (GlobMatcher) IsValidURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalizeURL strips the scheme and trailing slash so patterns written
// without a scheme match URLs that carry one.
func normalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "://"); i != -1 {
		s = s[i+3:]
	}
	return strings.TrimSuffix(s, "/")
}
