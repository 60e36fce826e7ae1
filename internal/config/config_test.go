package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	require.Equal(t, 50, v.GetInt("history.depth"))
	require.Equal(t, "h2", v.GetString("split.first_type"))
	require.True(t, v.GetBool("split.detect"))
	require.Equal(t, "dark", v.GetString("preview.style"))
	require.Equal(t, DefaultExportPath, v.GetString("export.path"))
	require.NoError(t, CheckConfigValidity(v))
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[history]\ndepth = 7\n\n[preview]\nstyle = \"light\"\n"), 0o600))
	t.Setenv("LINEMARK_PREVIEW_STYLE", "notty")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(context.Background(), v))
	require.Equal(t, 7, v.GetInt("history.depth"))
	require.Equal(t, "notty", v.GetString("preview.style"), "env wins over file")
	require.Equal(t, "markdown", v.GetString("export.format"), "defaults fill the rest")
}

func TestLoadExplicitMissingFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	err := Load(context.Background(), v)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("history.depth", 0)
	v.Set("split.first_type", "banner")
	v.Set("preview.style", "neon")
	v.Set("preview.word_wrap", -1)
	v.Set("export.format", "pdf")
	v.Set("export.path", " ")

	err := CheckConfigValidity(v)
	require.Error(t, err)

	msg := err.Error()
	expected := []string{
		"history.depth must be greater than 0",
		`split.first_type "banner" is not a block type`,
		`preview.style "neon" is not a known style`,
		"preview.word_wrap must not be negative",
		`export.format "pdf" must be markdown or html`,
		"export.path is required",
	}
	for _, want := range expected {
		require.Contains(t, msg, want)
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	require.True(t, strings.HasPrefix(out, "# linemark configuration (TOML)\n"))
	require.Contains(t, out, "[history]\n")
	require.Contains(t, out, "depth = 50\n")
	require.Contains(t, out, "first_type = \"h2\"\n")
	require.Contains(t, out, "path = \"generated_prompts.md\"\n")
	require.NoError(t, ValidateTOML(out))
}

func TestUpdateTOML(t *testing.T) {
	existing := "[history]\ndepth = 10\nmax_age = 3\n"
	out, changed := UpdateTOML(existing)
	require.True(t, changed)
	require.Contains(t, out, "depth = 10")
	require.Contains(t, out, "# OUTDATED: option removed from config schema\n# max_age = 3")
	require.Contains(t, out, "# Added by config update")
	require.Contains(t, out, "[split]")
	require.NoError(t, ValidateTOML(out))

	again, changed := UpdateTOML(out)
	require.False(t, changed)
	require.Equal(t, out, again)
}

func TestUpdateTOMLFillsExistingSection(t *testing.T) {
	existing := "[preview]\nstyle = \"light\"\n\n[export]\nformat = \"html\"\n"
	out, changed := UpdateTOML(existing)
	require.True(t, changed)
	require.Equal(t, 1, strings.Count(out, "[preview]"))
	require.Equal(t, 1, strings.Count(out, "[export]"))
	require.Contains(t, out, "style = \"light\"\n# Preview wrap width; 0 follows the pane width\nword_wrap = 0\n")
	require.Contains(t, out, "format = \"html\"\n# File written by the editor's write key\npath = \"generated_prompts.md\"\n")

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(out)))
	require.Equal(t, "light", v.GetString("preview.style"))
	require.Equal(t, 50, v.GetInt("history.depth"))
	require.True(t, v.GetBool("preview.hard_wraps"))
}

func TestValidateTOML(t *testing.T) {
	err := ValidateTOML("[history]\ndepth = = 3\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
