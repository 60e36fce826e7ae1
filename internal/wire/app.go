package wire

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/viper"
)

// Clipboard receives copied documents.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// App aggregates the major services for easy injection.
type App struct {
	Cfg       *viper.Viper
	Log       *log.Logger
	Clipboard Clipboard // nil when clipboard.enabled is false

	closers []io.Closer
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	app := &App{Cfg: v}

	var out io.Writer = io.Discard
	if path := strings.TrimSpace(v.GetString("log.file")); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		app.closers = append(app.closers, f)
		out = f
	}
	app.Log = log.New(out, "linemark ", log.LstdFlags)

	if v.GetBool("clipboard.enabled") {
		app.Clipboard = systemClipboard{}
	}
	return app, nil
}

// CopyFunc adapts the clipboard for the editor; nil when copying is off.
func (a *App) CopyFunc() func(string) error {
	if a == nil || a.Clipboard == nil {
		return nil
	}
	return a.Clipboard.WriteAll
}

// Close releases files opened by BuildApp.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
