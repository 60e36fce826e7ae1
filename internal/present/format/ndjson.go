package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/linemark/pkg/api"
)

// WriteNDJSONItems writes items as newline-delimited JSON objects.
func WriteNDJSONItems(w io.Writer, items []api.Item) error {
	enc := json.NewEncoder(w)
	for _, it := range toItemJSON(items) {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
