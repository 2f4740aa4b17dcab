package stylebot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	fetchCacheExpiration = 30 * time.Minute
	fetchCacheCleanup    = time.Hour

	// maxImportBytes caps a fetched stylesheet; anything larger is a
	// misconfigured import, not user CSS.
	maxImportBytes = 2 << 20
)

// Expander inlines @import rules by fetching the referenced stylesheets.
// Responses are cached with a TTL, and concurrent fetches of the same
// URL are de-duplicated: followers wait for the leader's result instead
// of issuing their own request.
type Expander struct {
	client *http.Client
	cache  *gocache.Cache
	log    *zap.Logger

	mu       sync.Mutex
	inflight map[string]*inflightFetch
}

type inflightFetch struct {
	done chan struct{}
	css  string
	err  error
}

// NewExpander creates an Expander. A nil client uses
// http.DefaultClient; a nil logger disables logging.
func NewExpander(client *http.Client, log *zap.Logger) *Expander {
	if client == nil {
		client = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Expander{
		client:   client,
		cache:    gocache.New(fetchCacheExpiration, fetchCacheCleanup),
		log:      log.Named("css-import"),
		inflight: make(map[string]*inflightFetch),
	}
}

// ExpandImports replaces every @import statement in src with the body of
// the referenced stylesheet. Statements whose fetch fails are left
// untouched; the returned error aggregates per-URL failures.
func (e *Expander) ExpandImports(ctx context.Context, src string) (string, error) {
	if !strings.Contains(strings.ToLower(src), "@import") {
		return src, nil
	}

	lexer := css.NewLexer(parse.NewInputString(src))

	var b strings.Builder
	b.Grow(len(src))
	var errs error

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal.
			break
		}

		// At-keywords are case-insensitive per CSS syntax.
		if tt == css.AtKeywordToken && strings.EqualFold(string(text), "@import") {
			stmt, url := collectImportStatement(lexer, text)
			if url == "" {
				b.WriteString(stmt)
				continue
			}

			fetched, err := e.fetch(ctx, url)
			if err != nil {
				e.log.Debug("@import fetch failed", zap.String("url", url), zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("import %s: %w", url, err))
				b.WriteString(stmt)
				continue
			}

			e.log.Debug("@import inlined", zap.String("url", url), zap.Int("bytes", len(fetched)))
			b.WriteString(fetched)
			continue
		}

		b.Write(text)
	}

	return b.String(), errs
}

// collectImportStatement consumes tokens through the terminating
// semicolon, returning the raw statement text and the import URL.
func collectImportStatement(lexer *css.Lexer, keyword []byte) (string, string) {
	var stmt strings.Builder
	stmt.Write(keyword)

	var url string
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return stmt.String(), url
		}
		stmt.Write(text)

		switch tt {
		case css.StringToken:
			if url == "" {
				url = unquote(string(text))
			}
		case css.URLToken:
			if url == "" {
				s := strings.TrimPrefix(string(text), "url(")
				s = strings.TrimSuffix(s, ")")
				url = unquote(strings.TrimSpace(s))
			}
		case css.SemicolonToken:
			return stmt.String(), url
		}
	}
}

// fetch returns the stylesheet at url, serving from cache when possible
// and joining an in-flight request for the same URL when one exists.
func (e *Expander) fetch(ctx context.Context, url string) (string, error) {
	if v, ok := e.cache.Get(url); ok {
		return v.(string), nil
	}

	e.mu.Lock()
	if f, ok := e.inflight[url]; ok {
		e.mu.Unlock()
		select {
		case <-f.done:
			return f.css, f.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f := &inflightFetch{done: make(chan struct{})}
	e.inflight[url] = f
	e.mu.Unlock()

	f.css, f.err = e.doFetch(ctx, url)
	if f.err == nil {
		e.cache.Set(url, f.css, gocache.DefaultExpiration)
	}

	e.mu.Lock()
	delete(e.inflight, url)
	e.mu.Unlock()
	close(f.done)

	return f.css, f.err
}

func (e *Expander) doFetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImportBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
