package stylebot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrEmptyPattern is returned when a mutation names an empty URL pattern.
var ErrEmptyPattern = errors.New("stylebot: empty URL pattern")

// Registry owns the URL-pattern→style mapping. It loads the map from its
// Store at construction and persists the whole collection after every
// mutation. Lookups for unknown URLs return zero values, never errors.
type Registry struct {
	mu        sync.Mutex
	styles    StyleMap
	store     Store
	matcher   Matcher
	merger    *Merger
	blocklist *Blocklist
	notifier  TabNotifier
	action    BrowserAction
	log       *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithMatcher replaces the default GlobMatcher.
func WithMatcher(m Matcher) Option { return func(r *Registry) { r.matcher = m } }

// WithMerger replaces the default CSS merger.
func WithMerger(m *Merger) Option { return func(r *Registry) { r.merger = m } }

// WithBlocklist installs a URL blocklist. Blocked URLs never receive
// styles.
func WithBlocklist(b *Blocklist) Option { return func(r *Registry) { r.blocklist = b } }

// WithTabNotifier installs the outbound tab-messaging collaborator.
func WithTabNotifier(n TabNotifier) Option { return func(r *Registry) { r.notifier = n } }

// WithBrowserAction installs the toolbar-indicator collaborator.
func WithBrowserAction(a BrowserAction) Option { return func(r *Registry) { r.action = a } }

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log.Named("styles")
		}
	}
}

// NewRegistry creates a Registry backed by store, loading the current
// style map from it.
func NewRegistry(ctx context.Context, store Store, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, errors.New("stylebot: nil store")
	}

	styles, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load styles: %w", err)
	}
	if styles == nil {
		styles = StyleMap{}
	}

	r := &Registry{
		styles:  styles,
		store:   store,
		matcher: GlobMatcher{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.merger == nil {
		r.merger = NewMerger(r.log)
	}

	r.log.Debug("styles loaded", zap.Int("count", len(styles)))
	return r, nil
}

// persist writes the full map to the store. Callers hold r.mu. The
// in-memory mutation stands even when the write fails; persistence is
// at-least-once with no rollback.
func (r *Registry) persist(ctx context.Context) error {
	if err := r.store.Save(ctx, r.styles.Clone()); err != nil {
		r.log.Warn("persist failed", zap.Error(err))
		return fmt.Errorf("persist styles: %w", err)
	}
	return nil
}

// Get returns the style stored for the exact pattern.
func (r *Registry) Get(url string) (Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.styles[url]
	return st, ok
}

// GetAll returns a copy of the entire mapping.
func (r *Registry) GetAll() StyleMap {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.styles.Clone()
}

// GetCSS returns the CSS stored for the pattern, or "" when absent.
func (r *Registry) GetCSS(url string) string {
	st, _ := r.Get(url)
	return st.CSS
}

// IsEnabled reports whether the pattern has an enabled style. Absent
// patterns are disabled.
func (r *Registry) IsEnabled(url string) bool {
	st, ok := r.Get(url)
	return ok && st.Enabled
}

// Len returns the number of stored styles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.styles)
}

// Set creates or overwrites the style for a pattern with enabled=true
// and persists. Setting empty CSS deletes the entry: emptied rules mean
// the style no longer exists.
func (r *Registry) Set(ctx context.Context, url, css string) error {
	if url == "" {
		return ErrEmptyPattern
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if (Style{CSS: css}).IsEmpty() {
		delete(r.styles, url)
		r.log.Debug("style emptied, deleting", zap.String("url", url))
		return r.persist(ctx)
	}

	r.styles[url] = Style{CSS: css, Enabled: true}
	r.log.Debug("style saved", zap.String("url", url), zap.Int("bytes", len(css)))
	return r.persist(ctx)
}

// Delete removes the style for a pattern and persists. Deleting an
// absent pattern still persists; it is not an error.
func (r *Registry) Delete(ctx context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.styles, url)
	r.log.Debug("style deleted", zap.String("url", url))
	return r.persist(ctx)
}

// DeleteAll removes every style with a single persist call.
func (r *Registry) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.styles = StyleMap{}
	r.log.Debug("all styles deleted")
	return r.persist(ctx)
}

// Toggle flips the enabled flag for a pattern, or sets it when value is
// non-nil. It reports false without touching anything when the entry is
// absent or has empty rules. Persistence only happens when save is true,
// so callers can batch.
func (r *Registry) Toggle(ctx context.Context, url string, value *bool, save bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.styles[url]
	if !ok || st.IsEmpty() {
		return false, nil
	}

	if value != nil {
		st.Enabled = *value
	} else {
		st.Enabled = !st.Enabled
	}
	r.styles[url] = st
	r.log.Debug("style toggled", zap.String("url", url), zap.Bool("enabled", st.Enabled))

	if !save {
		return true, nil
	}
	return true, r.persist(ctx)
}

// ToggleAll flips every style's enabled flag, or sets them all when
// value is non-nil, with exactly one persist call at the end.
func (r *Registry) ToggleAll(ctx context.Context, value *bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for url, st := range r.styles {
		if value != nil {
			st.Enabled = *value
		} else {
			st.Enabled = !st.Enabled
		}
		r.styles[url] = st
	}
	r.log.Debug("all styles toggled", zap.Int("count", len(r.styles)))
	return r.persist(ctx)
}

// Import merges an externally supplied mapping into the registry,
// accepting both wire shapes (see ImportEntry). Entries that normalize
// to empty CSS are skipped. One persist call covers the whole batch;
// per-entry problems are aggregated into the returned error without
// aborting the rest of the import.
func (r *Registry) Import(ctx context.Context, entries map[string]ImportEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	imported := 0
	for url, entry := range entries {
		if url == "" {
			errs = multierr.Append(errs, ErrEmptyPattern)
			continue
		}

		st := entry.normalize()
		if st.IsEmpty() {
			r.log.Debug("skipping empty import entry", zap.String("url", url))
			continue
		}

		r.styles[url] = st
		imported++
	}

	r.log.Debug("styles imported", zap.Int("count", imported))
	return multierr.Append(errs, r.persist(ctx))
}
