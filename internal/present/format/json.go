package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/linemark/pkg/api"
)

// itemJSON is the exported shape of an item; Index is 1-based.
type itemJSON struct {
	Index  int           `json:"index"`
	Type   api.BlockType `json:"type"`
	Active bool          `json:"active"`
	Text   string        `json:"text"`
}

// documentJSON bundles the items with the assembled Markdown.
type documentJSON struct {
	Items    []itemJSON `json:"items"`
	Markdown string     `json:"markdown"`
}

func toItemJSON(items []api.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for i, it := range items {
		out = append(out, itemJSON{Index: i + 1, Type: it.Type, Active: it.Active, Text: it.Text})
	}
	return out
}

// WriteJSONItems writes the items and the assembled Markdown as one JSON object.
func WriteJSONItems(w io.Writer, items []api.Item, markdown string, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(documentJSON{Items: toItemJSON(items), Markdown: markdown})
}
