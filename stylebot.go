// Package stylebot manages per-URL custom CSS styles: storing,
// enabling/disabling, merging, and serving CSS rule sets keyed by URL
// pattern, and computing which CSS applies to a given browser tab.
//
// # Registry
//
// The Registry is the functional surface. It loads its style map from a
// Store at construction and persists back on every mutation:
//
//	store := stylebot.NewFileStore("styles.json")
//	reg, err := stylebot.NewRegistry(ctx, store)
//	if err != nil { ... }
//	reg.Set(ctx, "example.com/**", "body { background: #222; }")
//
// # Computing styles for a tab
//
// Styles whose pattern matches a tab URL are merged into a single CSS
// text, with every merged declaration forced to !important so injected
// rules win over page rules. The longest matching pattern is the primary
// URL and is merged last, so its declarations break conflicts:
//
//	cache := stylebot.NewTabCache()
//	computed, err := reg.ComputedStylesForTab(ctx, tab, cache)
//
// # Collaborators
//
// Pattern matching, persistence, tab messaging and the browser-action
// indicator are all pluggable interfaces with safe defaults. Absent URLs
// are never errors: lookups return zero values and "no style defined"
// simply means the feature is inactive for that page.
package stylebot
