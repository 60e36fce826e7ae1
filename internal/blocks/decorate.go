package blocks

import (
	"fmt"
	"strings"
)

// Decoration is an inline or trailing Markdown snippet applied to a selection.
type Decoration string

const (
	DecorBold    Decoration = "bold"
	DecorItalic  Decoration = "italic"
	DecorStrike  Decoration = "strike"
	DecorCode    Decoration = "code"
	DecorLink    Decoration = "link"
	DecorRule    Decoration = "rule"
	DecorDetails Decoration = "details"
)

// AllDecorations returns the palette in display order.
func AllDecorations() []Decoration {
	return []Decoration{DecorBold, DecorItalic, DecorStrike, DecorCode, DecorLink, DecorRule, DecorDetails}
}

// ParseDecoration parses a decoration name.
func ParseDecoration(s string) (Decoration, error) {
	d := Decoration(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range AllDecorations() {
		if k == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown decoration %q", s)
}

// Decorate wraps or extends s with the decoration d.
func Decorate(d Decoration, s string) string {
	switch d {
	case DecorBold:
		return "**" + s + "**"
	case DecorItalic:
		return "*" + s + "*"
	case DecorStrike:
		return "~~" + s + "~~"
	case DecorCode:
		return "`" + s + "`"
	case DecorLink:
		return "[" + s + "](url)"
	case DecorRule:
		return s + "\n---\n"
	case DecorDetails:
		return s + "\n- Requirements:\n  - \n- Notes:\n"
	default:
		return s
	}
}

// DecorateBody applies d to the text after the block prefix, leaving the
// template syntax intact. Block-level decorations (rule, details) append to
// the whole text.
func DecorateBody(d Decoration, text string) string {
	switch d {
	case DecorRule, DecorDetails:
		return Decorate(d, text)
	}
	body := Strip(text)
	if body == text {
		return Decorate(d, text)
	}
	if strings.HasPrefix(text, fence) {
		return Template(Detect(text), Decorate(d, body))
	}
	if !strings.HasSuffix(text, body) {
		return Decorate(d, text)
	}
	return strings.TrimSuffix(text, body) + Decorate(d, body)
}
