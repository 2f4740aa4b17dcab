package stylebot

import (
	"context"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StylesForPage returns every enabled, non-empty style whose pattern
// matches the tab URL. The result's URL is the primary URL: the longest
// matching pattern. Entries come back ordered shortest pattern first
// (ties broken lexicographically) so merging in order leaves the primary
// style's declarations on top. Invalid and blocklisted URLs yield an
// empty result.
func (r *Registry) StylesForPage(tabURL string) PageStyles {
	if !r.matcher.IsValidURL(tabURL) || r.blocklist.Blocked(tabURL) {
		return PageStyles{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var out PageStyles
	for url, st := range r.styles {
		if !st.Enabled || st.IsEmpty() {
			continue
		}
		if !r.matcher.Matches(tabURL, url) {
			continue
		}

		out.Styles = append(out.Styles, PageStyle{URL: url, CSS: st.CSS})
		// Same tie-break as the sort below, so the primary entry is
		// always the last one merged regardless of map iteration order.
		if len(url) > len(out.URL) || (len(url) == len(out.URL) && url > out.URL) {
			out.URL = url
		}
	}

	sort.Slice(out.Styles, func(i, j int) bool {
		a, b := out.Styles[i].URL, out.Styles[j].URL
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	return out
}

// MergedCSSForPage accumulates CSS across all styles matching the tab
// URL and returns it with the primary URL. Both are empty when nothing
// matches.
func (r *Registry) MergedCSSForPage(tabURL string) (string, string) {
	page := r.StylesForPage(tabURL)

	css := ""
	for _, ps := range page.Styles {
		css = r.merger.Merge(css, ps.CSS)
	}
	return css, page.URL
}

// ComputedStylesForTab computes the merged CSS for a tab, records it in
// the caller's cache, and refreshes the browser-action indicator. The
// cache is explicit state owned by the caller, not ambient; pass nil to
// skip caching.
func (r *Registry) ComputedStylesForTab(ctx context.Context, tab Tab, cache *TabCache) (ComputedStyles, error) {
	css, primary := r.MergedCSSForPage(tab.URL)
	computed := ComputedStyles{URL: primary, CSS: css}

	if cache != nil {
		cache.Put(tab.ID, computed)
	}

	r.log.Debug("computed styles for tab",
		zap.Int("tab", tab.ID),
		zap.String("primary", primary),
		zap.Int("bytes", len(css)))

	var err error
	if r.action != nil {
		err = r.action.Update(ctx, tab)
	}
	return computed, err
}

// PushStylesToTab sends the tab's computed styles to its renderer via
// the TabNotifier, computing them first when the cache has no entry.
// Without a notifier this only warms the cache.
func (r *Registry) PushStylesToTab(ctx context.Context, tab Tab, cache *TabCache) error {
	computed, ok := ComputedStyles{}, false
	if cache != nil {
		computed, ok = cache.Get(tab.ID)
	}
	if !ok {
		var err error
		computed, err = r.ComputedStylesForTab(ctx, tab, cache)
		if err != nil {
			return err
		}
	}

	if r.notifier == nil {
		return nil
	}
	return r.notifier.NotifyTab(ctx, tab, computed)
}

// RefreshTabs recomputes styles for every given tab, aggregating
// per-tab failures. Used after bulk mutations (import, toggle-all).
func (r *Registry) RefreshTabs(ctx context.Context, tabs []Tab, cache *TabCache) error {
	var errs error
	for _, tab := range tabs {
		if _, err := r.ComputedStylesForTab(ctx, tab, cache); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
