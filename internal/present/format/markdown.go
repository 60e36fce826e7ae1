package format

import (
	"io"
	"strings"

	"github.com/mithrel/linemark/internal/render"
)

// WriteMarkdown writes the assembled Markdown followed by a newline.
func WriteMarkdown(w io.Writer, md string) error {
	if md != "" && !strings.HasSuffix(md, "\n") {
		md += "\n"
	}
	_, err := io.WriteString(w, md)
	return err
}

// WriteHTML writes a standalone HTML page rendered from md.
func WriteHTML(w io.Writer, title, md string, opts render.Options) error {
	out, err := render.HTMLPage(title, md, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// WritePretty renders md for the terminal with glamour.
func WritePretty(w io.Writer, md, style string, width int) error {
	if width <= 0 {
		width = 80
	}
	out, err := render.Terminal(md, width, style)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
