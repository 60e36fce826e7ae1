package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg conveys the outcome of a clipboard copy back to Update.
type copyResultMsg struct {
	n   int
	err error
}

// writeResultMsg conveys the outcome of an export write back to Update.
type writeResultMsg struct {
	path        string
	fingerprint string
	err         error
}

// copyCmd puts md on the clipboard.
func copyCmd(copyFn func(string) error, md string) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(md); err != nil {
			return copyResultMsg{err: err}
		}
		return copyResultMsg{n: len(md)}
	}
}

// writeCmd writes content to path, creating parent directories.
func writeCmd(path, content, fingerprint string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return writeResultMsg{path: path, err: fmt.Errorf("no export path configured")}
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return writeResultMsg{path: path, err: err}
			}
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return writeResultMsg{path: path, err: err}
		}
		return writeResultMsg{path: path, fingerprint: fingerprint}
	}
}
