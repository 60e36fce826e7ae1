// Package blocks maps block types to their Markdown templates and back.
package blocks

import (
	"regexp"
	"strings"

	"github.com/mithrel/linemark/pkg/api"
)

const fence = "```"

type blockInfo struct {
	label  string
	glyph  string
	sample string
}

var blockInfos = map[api.BlockType]blockInfo{
	api.BlockH2:    {label: "Heading (H2)", glyph: "H2", sample: "## text"},
	api.BlockH3:    {label: "Heading (H3)", glyph: "H3", sample: "### text"},
	api.BlockList:  {label: "List", glyph: "•", sample: "- text"},
	api.BlockTask:  {label: "Task", glyph: "☐", sample: "- [ ] text"},
	api.BlockCode:  {label: "Code", glyph: "<>", sample: "```\\ntext\\n```"},
	api.BlockQuote: {label: "Quote", glyph: "❝", sample: "> text"},
	api.BlockPlain: {label: "Text", glyph: "¶", sample: "text"},
}

// Template wraps text in the Markdown syntax of block type t.
// Unknown types are treated as plain.
func Template(t api.BlockType, text string) string {
	switch t {
	case api.BlockH2:
		return "## " + text
	case api.BlockH3:
		return "### " + text
	case api.BlockList:
		return "- " + text
	case api.BlockTask:
		return "- [ ] " + text
	case api.BlockCode:
		return fence + "\n" + text + "\n" + fence
	case api.BlockQuote:
		return "> " + text
	default:
		return text
	}
}

// Detect guesses the block type of a raw input line from its prefix.
func Detect(line string) api.BlockType {
	switch {
	case strings.HasPrefix(line, "## "):
		return api.BlockH2
	case strings.HasPrefix(line, "### "):
		return api.BlockH3
	case strings.HasPrefix(line, "- [ ] "), strings.HasPrefix(line, "- [x] "):
		return api.BlockTask
	case strings.HasPrefix(line, "- "):
		return api.BlockList
	case strings.HasPrefix(line, "> "):
		return api.BlockQuote
	case strings.HasPrefix(line, fence):
		return api.BlockCode
	default:
		return api.BlockPlain
	}
}

var (
	headingRe   = regexp.MustCompile(`^#+\s+`)
	taskRe      = regexp.MustCompile(`^-\s+\[[ x]\]\s+`)
	listRe      = regexp.MustCompile(`^-\s+`)
	quoteRe     = regexp.MustCompile(`^>\s+`)
	fenceOpenRe = regexp.MustCompile("^```\n?")
	fenceEndRe  = regexp.MustCompile("\n?```$")
)

// Strip removes the leading block syntax from text so another template can
// be applied. The passes run in a fixed order and each removes at most one
// prefix.
func Strip(text string) string {
	text = headingRe.ReplaceAllString(text, "")
	text = taskRe.ReplaceAllString(text, "")
	text = listRe.ReplaceAllString(text, "")
	text = quoteRe.ReplaceAllString(text, "")
	text = fenceOpenRe.ReplaceAllString(text, "")
	text = fenceEndRe.ReplaceAllString(text, "")
	return text
}

// Retype strips the current block syntax from text and applies t.
func Retype(text string, t api.BlockType) string {
	return Template(t, Strip(text))
}

// Label returns the menu label for t.
func Label(t api.BlockType) string {
	if s, ok := blockInfos[t]; ok {
		return s.label
	}
	return string(t)
}

// Glyph returns the short badge shown in the card gutter.
func Glyph(t api.BlockType) string {
	if s, ok := blockInfos[t]; ok {
		return s.glyph
	}
	return "?"
}

// Sample returns an escaped one-line example of the template.
func Sample(t api.BlockType) string {
	if s, ok := blockInfos[t]; ok {
		return s.sample
	}
	return ""
}
