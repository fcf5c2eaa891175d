package termbank

import (
	"encoding/json"
	"strings"
)

// blockTags start a new gloss line before and after their content.
var blockTags = map[string]bool{
	"div":     true,
	"p":       true,
	"li":      true,
	"ol":      true,
	"ul":      true,
	"table":   true,
	"thead":   true,
	"tbody":   true,
	"tfoot":   true,
	"tr":      true,
	"details": true,
	"summary": true,
}

// skippedTags contribute no text.
var skippedTags = map[string]bool{
	"a":   true,
	"rt":  true,
	"rp":  true,
	"img": true,
}

// definition is the object form of a term-bank definition.
type definition struct {
	Type    string          `json:"type"`
	Text    string          `json:"text"`
	Content json.RawMessage `json:"content"`
}

// node is a structured-content element.
type node struct {
	Tag     string          `json:"tag"`
	Content json.RawMessage `json:"content"`
}

// ExtractGlossary turns one raw definition into gloss lines.
// Plain strings and text objects yield one line; structured content is
// flattened so that block elements and line breaks separate lines.
// Unknown definition kinds (images, deinflection pairs) yield nothing.
func ExtractGlossary(raw json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return nonEmpty(strings.TrimSpace(s))
	}

	var def definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil
	}

	switch def.Type {
	case "text":
		return nonEmpty(strings.TrimSpace(def.Text))
	case "structured-content":
		var lb lineBuilder
		lb.walk(def.Content)
		lb.flush()
		return lb.lines
	default:
		return nil
	}
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

type lineBuilder struct {
	lines []string
	cur   strings.Builder
}

func (b *lineBuilder) flush() {
	line := strings.TrimSpace(b.cur.String())
	b.cur.Reset()
	if line != "" {
		b.lines = append(b.lines, line)
	}
}

func (b *lineBuilder) walk(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}

	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) == nil {
			b.text(s)
		}
	case '[':
		var children []json.RawMessage
		if json.Unmarshal(raw, &children) == nil {
			for _, child := range children {
				b.walk(child)
			}
		}
	case '{':
		var n node
		if json.Unmarshal(raw, &n) != nil {
			return
		}
		b.element(n)
	}
}

func (b *lineBuilder) element(n node) {
	switch {
	case skippedTags[n.Tag]:
		return
	case n.Tag == "br":
		b.flush()
	case blockTags[n.Tag]:
		b.flush()
		b.walk(n.Content)
		b.flush()
	default:
		b.walk(n.Content)
	}
}

// text appends s, treating embedded newlines as line breaks.
func (b *lineBuilder) text(s string) {
	parts := strings.Split(s, "\n")
	for i, part := range parts {
		if i > 0 {
			b.flush()
		}
		b.cur.WriteString(part)
	}
}
