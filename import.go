package stylebot

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ImportShape tags which wire shape an imported entry arrived in.
type ImportShape int

const (
	// ShapeModern entries carry a "css" field plus an enabled flag.
	ShapeModern ImportShape = iota
	// ShapeLegacy entries have no "css" field: the value is a
	// selector→declarations object that must be normalized into CSS
	// text and created enabled.
	ShapeLegacy
)

// ImportEntry is one imported style in either supported wire shape. The
// shape is decided by the presence of the "css" field, and kept explicit
// so callers can tell how an entry was interpreted.
type ImportEntry struct {
	Shape   ImportShape
	CSS     string
	Enabled bool
	Rules   map[string]map[string]string
}

// UnmarshalJSON decodes either wire shape.
func (e *ImportEntry) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decode import entry: %w", err)
	}

	if cssRaw, ok := probe["css"]; ok {
		e.Shape = ShapeModern
		if err := json.Unmarshal(cssRaw, &e.CSS); err != nil {
			return fmt.Errorf("decode css field: %w", err)
		}
		// Absent enabled means enabled: older exports omitted the flag.
		e.Enabled = true
		if enRaw, ok := probe["enabled"]; ok {
			if err := json.Unmarshal(enRaw, &e.Enabled); err != nil {
				return fmt.Errorf("decode enabled field: %w", err)
			}
		}
		return nil
	}

	e.Shape = ShapeLegacy
	e.Enabled = true
	if err := json.Unmarshal(data, &e.Rules); err != nil {
		return fmt.Errorf("decode legacy rules: %w", err)
	}
	return nil
}

// normalize converts the entry into the current Style shape.
func (e ImportEntry) normalize() Style {
	if e.Shape == ShapeLegacy {
		return Style{CSS: serializeRules(e.Rules), Enabled: true}
	}
	return Style{CSS: e.CSS, Enabled: e.Enabled}
}

// serializeRules renders a legacy selector→declarations object as CSS
// text. Selectors and properties are sorted for deterministic output.
func serializeRules(rules map[string]map[string]string) string {
	if len(rules) == 0 {
		return ""
	}

	selectors := make([]string, 0, len(rules))
	for sel := range rules {
		selectors = append(selectors, sel)
	}
	sort.Strings(selectors)

	var b strings.Builder
	for _, sel := range selectors {
		decls := rules[sel]
		if len(decls) == 0 {
			continue
		}

		props := make([]string, 0, len(decls))
		for prop := range decls {
			props = append(props, prop)
		}
		sort.Strings(props)

		b.WriteString(sel)
		b.WriteString(" {\n")
		for _, prop := range props {
			fmt.Fprintf(&b, "  %s: %s;\n", prop, decls[prop])
		}
		b.WriteString("}\n")
	}
	return b.String()
}
