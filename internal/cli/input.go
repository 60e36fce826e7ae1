package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mithrel/linemark/internal/doc"
	"github.com/mithrel/linemark/internal/editor"
	"github.com/mithrel/linemark/internal/wire"
	"github.com/mithrel/linemark/pkg/api"
)

// readInput returns the text to split and a short name for it. A file
// argument wins; "-" or a non-terminal stdin is read whole; otherwise the
// user's editor is opened on an empty buffer.
func readInput(cmd *cobra.Command, args []string) (text, name string, err error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read input: %w", err)
		}
		return string(data), filepath.Base(args[0]), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) && len(args) == 0 {
		text, err := captureFromEditor("input")
		return text, "input", err
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

func captureFromEditor(name string) (string, error) {
	path, err := editor.PathForSession(name)
	if err != nil {
		return "", err
	}
	defer os.Remove(path)
	final, _, err := editor.OpenAt(path, []byte(editor.ComposeInput("")))
	if err != nil {
		return "", fmt.Errorf("editor: %w", err)
	}
	return editor.ParseInput(string(final)), nil
}

func splitOptions(app *wire.App) (doc.SplitOptions, error) {
	first, err := api.ParseBlockType(app.Cfg.GetString("split.first_type"))
	if err != nil {
		return doc.SplitOptions{}, fmt.Errorf("split.first_type: %w", err)
	}
	return doc.SplitOptions{
		FirstType:    first,
		Detect:       app.Cfg.GetBool("split.detect"),
		HistoryDepth: app.Cfg.GetInt("history.depth"),
	}, nil
}

// loadDocument reads input and splits it into a document.
func loadDocument(cmd *cobra.Command, args []string) (*doc.Document, string, error) {
	app := getApp(cmd)
	text, name, err := readInput(cmd, args)
	if err != nil {
		return nil, "", err
	}
	opts, err := splitOptions(app)
	if err != nil {
		return nil, "", err
	}
	// A trailing newline ends the last line; it does not start a new item.
	d, err := doc.Split(strings.TrimRight(text, "\r\n"), opts)
	if err != nil {
		return nil, "", err
	}
	app.Log.Printf("split %s into %d items", name, d.Len())
	return d, name, nil
}
