package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/pkg/api"
)

// TSV columns: index, type, active, text
var headerLine = "index\ttype\tactive\ttext\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

// WritePlainItems lists items as aligned columns.
func WritePlainItems(w io.Writer, items []api.Item, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for i, it := range items {
		active := "on"
		if !it.Active {
			active = "off"
		}
		line := fmt.Sprintf("%d\t%s\t%s\t%s\n", i+1, it.Type, active, esc(it.Text))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}

// WriteBlockTypes lists the available block types.
func WriteBlockTypes(w io.Writer, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, "key\tglyph\tlabel\ttemplate\n")
	}
	for _, t := range api.AllBlockTypes() {
		line := fmt.Sprintf("%s\t%s\t%s\t%s\n", t, blocks.Glyph(t), blocks.Label(t), blocks.Sample(t))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}
