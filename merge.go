package stylebot

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Merger accumulates CSS from multiple styles into a single text. Every
// merged declaration is forced to !important so injected rules take
// priority over page rules; callers merge the primary style last so its
// declarations win remaining conflicts.
type Merger struct {
	log *zap.Logger
}

// NewMerger creates a Merger. A nil logger disables logging.
func NewMerger(log *zap.Logger) *Merger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Merger{log: log.Named("css-merge")}
}

// Merge appends src to dst with forced priority markers. Empty src is a
// no-op. Unparseable src degrades to a raw append rather than dropping
// the user's rules.
func (m *Merger) Merge(dst, src string) string {
	if strings.TrimSpace(src) == "" {
		return dst
	}

	out, ok := m.forceImportant(src)
	if !ok {
		m.log.Debug("CSS not parseable, appending raw", zap.Int("bytes", len(src)))
		out = src
	}

	if strings.TrimSpace(dst) == "" {
		return out
	}
	return dst + "\n" + out
}

// forceImportant re-serializes CSS with !important on every declaration.
// Returns false when the input cannot be walked as a stylesheet.
func (m *Merger) forceImportant(src string) (string, bool) {
	input := parse.NewInputString(src)
	parser := css.NewParser(input, false)

	var b strings.Builder
	b.Grow(len(src) + 64)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				m.log.Debug("CSS parse error", zap.Error(err))
				return "", false
			}
			return b.String(), true

		case css.AtRuleGrammar:
			// Block-less @-rule (@import, @charset); pass through.
			b.Write(data)
			if s := tokensString(parser.Values()); s != "" {
				b.WriteString(" ")
				b.WriteString(s)
			}
			b.WriteString(";\n")

		case css.BeginAtRuleGrammar:
			b.Write(data)
			if s := tokensString(parser.Values()); s != "" {
				b.WriteString(" ")
				b.WriteString(s)
			}
			b.WriteString(" {\n")

		case css.EndAtRuleGrammar:
			b.WriteString("}\n")

		case css.QualifiedRuleGrammar:
			// Selector in a comma-separated group, before the last one.
			b.Write(data)
			b.WriteString(strings.TrimSuffix(tokensString(parser.Values()), ","))
			b.WriteString(",\n")

		case css.BeginRulesetGrammar:
			b.Write(data)
			b.WriteString(tokensString(parser.Values()))
			b.WriteString(" {\n")

		case css.EndRulesetGrammar:
			b.WriteString("}\n")

		case css.DeclarationGrammar:
			b.WriteString("  ")
			b.Write(data)
			b.WriteString(": ")
			b.WriteString(stripImportant(tokensString(parser.Values())))
			b.WriteString(" !important;\n")

		case css.CustomPropertyGrammar:
			// Custom properties keep their value untouched; forcing
			// priority on them changes var() resolution.
			b.WriteString("  ")
			b.Write(data)
			b.WriteString(":")
			b.WriteString(tokensString(parser.Values()))
			b.WriteString(";\n")

		case css.CommentGrammar:
			// Comments are dropped from merged output.
		}
	}
}

// tokensString concatenates token data, trimming edge whitespace.
func tokensString(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// stripImportant removes a trailing !important (or "! important") from a
// declaration value so re-adding the marker never doubles it.
func stripImportant(s string) string {
	lower := strings.ToLower(s)
	if !strings.HasSuffix(lower, "important") {
		return s
	}
	head := strings.TrimSpace(s[:len(s)-len("important")])
	if !strings.HasSuffix(head, "!") {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(head, "!"))
}
