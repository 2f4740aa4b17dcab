package stylebot

import (
	"fmt"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Blocklist holds gitignore-syntax rules for URLs that must never
// receive styles, regardless of registry contents. A nil Blocklist
// blocks nothing.
type Blocklist struct {
	gi *ignore.GitIgnore
}

// NewBlocklist compiles blocklist rules from the given lines. Lines use
// gitignore syntax against the scheme-stripped URL, so negation ("!")
// and directory-style suffixes work as expected:
//
//	bank.example.com/**
//	*.gov/**
//	!intranet.gov/**
func NewBlocklist(lines ...string) *Blocklist {
	return &Blocklist{gi: ignore.CompileIgnoreLines(lines...)}
}

// LoadBlocklistFile compiles a blocklist from a rules file, one pattern
// per line with # comments.
func LoadBlocklistFile(path string) (*Blocklist, error) {
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("compile blocklist %s: %w", path, err)
	}
	return &Blocklist{gi: gi}, nil
}

// Blocked reports whether styling is disabled for the URL.
func (b *Blocklist) Blocked(rawURL string) bool {
	if b == nil || b.gi == nil {
		return false
	}
	target := normalizeURL(rawURL)
	if target == "" {
		return false
	}
	return b.gi.MatchesPath(target)
}

// Rules loads blocklist lines from raw text, skipping blanks and
// comments. Useful when rules arrive from config rather than a file.
func Rules(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
