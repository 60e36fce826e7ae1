package api

import (
	"fmt"
	"strings"
)

// BlockType is the Markdown block kind an item is rendered as.
type BlockType string

const (
	BlockH2    BlockType = "h2"
	BlockH3    BlockType = "h3"
	BlockList  BlockType = "list"
	BlockTask  BlockType = "task"
	BlockCode  BlockType = "code"
	BlockQuote BlockType = "quote"
	BlockPlain BlockType = "plain"
)

// AllBlockTypes returns every block type in menu order.
func AllBlockTypes() []BlockType {
	return []BlockType{BlockH2, BlockH3, BlockList, BlockTask, BlockCode, BlockQuote, BlockPlain}
}

// Valid reports whether t is one of the known block types.
func (t BlockType) Valid() bool {
	for _, k := range AllBlockTypes() {
		if k == t {
			return true
		}
	}
	return false
}

// ParseBlockType parses a block type key or one of its aliases.
func ParseBlockType(s string) (BlockType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h2", "heading2", "heading-2", "##":
		return BlockH2, nil
	case "h3", "heading3", "heading-3", "###":
		return BlockH3, nil
	case "list", "bullet", "ul", "-":
		return BlockList, nil
	case "task", "todo", "checkbox":
		return BlockTask, nil
	case "code", "fence", "pre":
		return BlockCode, nil
	case "quote", "blockquote", ">":
		return BlockQuote, nil
	case "plain", "text", "p", "":
		return BlockPlain, nil
	}
	return "", fmt.Errorf("unknown block type %q", s)
}

// Item is one line of input text with its block type and active flag.
// Text holds the Markdown as it will be emitted, template included.
type Item struct {
	Text   string    `json:"text"`
	Type   BlockType `json:"type"`
	Active bool      `json:"active"`
}

// Snapshot is an ordered copy of the item list.
type Snapshot []Item

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}
