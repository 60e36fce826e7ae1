package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/linemark/internal/render"
	"github.com/mithrel/linemark/pkg/api"
)

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "linemark"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "linemark"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file in the search path is fine; a broken or missing
		// explicit --config is not.
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: LINEMARK_* (highest among these sources)
	v.SetEnvPrefix("linemark")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("split.first_type")) == "" {
		v.Set("split.first_type", string(api.BlockH2))
	}
	if strings.TrimSpace(v.GetString("export.path")) == "" {
		v.Set("export.path", DefaultExportPath)
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "linemark", "config.toml")
}

// DefaultExportPath is where the editor writes the document when asked.
const DefaultExportPath = "generated_prompts.md"

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "history.depth", Default: 50, Comment: "Undo steps kept per session"},

		{Key: "split.first_type", Default: string(api.BlockH2), Comment: "Block type given to the first line (h2, h3, list, task, code, quote, plain)"},
		{Key: "split.detect", Default: true, Comment: "Detect block types of later lines from their Markdown prefix"},

		{Key: "preview.style", Default: "dark", Comment: "Glamour style for the preview pane (auto, dark, light, notty, dracula, tokyo-night, pink, ascii)"},
		{Key: "preview.word_wrap", Default: 0, Comment: "Preview wrap width; 0 follows the pane width"},
		{Key: "preview.hard_wraps", Default: true, Comment: "Render single newlines as line breaks in HTML output"},

		{Key: "export.path", Default: DefaultExportPath, Comment: "File written by the editor's write key"},
		{Key: "export.format", Default: "markdown", Comment: "Export format: markdown or html"},

		{Key: "clipboard.enabled", Default: true, Comment: "Allow copying the document to the system clipboard"},

		{Key: "log.file", Default: "", Comment: "Append diagnostics to this file; empty discards them"},
	}
}

// CheckConfigValidity reports every invalid option at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string
	if v.GetInt("history.depth") <= 0 {
		problems = append(problems, "history.depth must be greater than 0")
	}
	if _, err := api.ParseBlockType(v.GetString("split.first_type")); err != nil {
		problems = append(problems, fmt.Sprintf("split.first_type %q is not a block type", v.GetString("split.first_type")))
	}
	if !render.ValidStyle(v.GetString("preview.style")) {
		problems = append(problems, fmt.Sprintf("preview.style %q is not a known style", v.GetString("preview.style")))
	}
	if v.GetInt("preview.word_wrap") < 0 {
		problems = append(problems, "preview.word_wrap must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(v.GetString("export.format"))) {
	case "markdown", "md", "html":
	default:
		problems = append(problems, fmt.Sprintf("export.format %q must be markdown or html", v.GetString("export.format")))
	}
	if strings.TrimSpace(v.GetString("export.path")) == "" {
		problems = append(problems, "export.path is required")
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n  - %s", strings.Join(problems, "\n  - "))
}
