package present

import (
	"context"
	"fmt"
	"io"

	"github.com/mithrel/linemark/internal/doc"
	"github.com/mithrel/linemark/internal/present/format"
	"github.com/mithrel/linemark/internal/present/tui"
	"github.com/mithrel/linemark/internal/render"
)

type Mode int

const (
	ModeMarkdown Mode = iota
	ModeHTML
	ModeJSON
	ModeNDJSON
	ModePlain
	ModePretty
	ModeTUI
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
	Title      string
	HTML       render.Options
	Style      string
	Width      int
	TUI        tui.Options
}

// ParseMode parses "markdown", "html", "json", "ndjson", "plain", "pretty" or "tui".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "markdown", "md":
		return ModeMarkdown, true
	case "html":
		return ModeHTML, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "tui":
		return ModeTUI, true
	default:
		return ModeMarkdown, false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeHTML:
		return "html"
	case ModeJSON:
		return "json"
	case ModeNDJSON:
		return "ndjson"
	case ModePlain:
		return "plain"
	case ModePretty:
		return "pretty"
	case ModeTUI:
		return "tui"
	default:
		return "markdown"
	}
}

// RenderDocument renders a document according to options.
func RenderDocument(ctx context.Context, w io.Writer, d *doc.Document, opts Options) error {
	switch opts.Mode {
	case ModeMarkdown:
		return format.WriteMarkdown(w, d.Markdown())
	case ModeHTML:
		return format.WriteHTML(w, opts.Title, d.Markdown(), opts.HTML)
	case ModeJSON:
		return format.WriteJSONItems(w, d.Items(), d.Markdown(), opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONItems(w, d.Items())
	case ModePlain:
		return format.WritePlainItems(w, d.Items(), opts.Headers)
	case ModePretty:
		return format.WritePretty(w, d.Markdown(), opts.Style, opts.Width)
	case ModeTUI:
		_, err := tui.Run(ctx, d, opts.TUI)
		return err
	default:
		return fmt.Errorf("unsupported output mode %d", opts.Mode)
	}
}
