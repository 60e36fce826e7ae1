package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/linemark/internal/doc"
)

// isolate points every config lookup at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(dir, "run"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestConvertStdin(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "Title\nalpha\n- beta\n", "convert")
	require.NoError(t, err)
	require.Equal(t, "## Title\n\nalpha\n\n- beta\n", out)
}

func TestConvertTypeAndDisable(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "Title\nalpha\nbeta\n", "convert", "--type", "2=task", "--disable", "3")
	require.NoError(t, err)
	require.Equal(t, "## Title\n\n- [ ] alpha\n", out)
}

func TestConvertDecorate(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "Title\nalpha\n- beta", "convert", "--decorate", "2=bold", "--decorate", "3=italic")
	require.NoError(t, err)
	require.Equal(t, "## Title\n\n**alpha**\n\n- *beta*\n", out)
}

func TestConvertFirstTypeFlag(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "Title\nalpha", "convert", "--first-type", "h3", "--detect=false")
	require.NoError(t, err)
	require.Equal(t, "### Title\n\nalpha\n", out)
}

func TestConvertJSON(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "Title\nalpha\n> quoted", "convert", "-o", "json", "--disable", "2")
	require.NoError(t, err)

	var got struct {
		Items []struct {
			Index  int    `json:"index"`
			Type   string `json:"type"`
			Active bool   `json:"active"`
			Text   string `json:"text"`
		} `json:"items"`
		Markdown string `json:"markdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Items, 3)
	require.Equal(t, "h2", got.Items[0].Type)
	require.False(t, got.Items[1].Active)
	require.Equal(t, "quote", got.Items[2].Type)
	require.Equal(t, "## Title\n\n> quoted", got.Markdown)
}

func TestConvertFileToWrite(t *testing.T) {
	dir := isolate(t)
	in := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("Plan\nstep one\n"), 0o600))
	dst := filepath.Join(dir, "out", "plan.html")

	_, stderr, err := runCLI(t, "", "convert", in, "-o", "html", "--title", "Plan", "-w", dst)
	require.NoError(t, err)
	require.Contains(t, stderr, "Wrote "+dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), "<title>Plan</title>")
	require.Contains(t, string(data), "<h2")
	require.Contains(t, string(data), "step one")
}

func TestConvertErrors(t *testing.T) {
	isolate(t)

	_, _, err := runCLI(t, "  \n\n", "convert")
	require.ErrorIs(t, err, doc.ErrEmptyInput)
	require.EqualError(t, err, "no input text: type or load some text first")

	_, _, err = runCLI(t, "Title", "convert", "--type", "9=list")
	require.ErrorIs(t, err, doc.ErrIndexOutOfRange)
	require.Contains(t, err.Error(), "item 9")

	_, _, err = runCLI(t, "Title", "convert", "--type", "1=banner")
	require.Error(t, err)

	_, _, err = runCLI(t, "Title", "convert", "--type", "1list")
	require.ErrorContains(t, err, "want N=value")

	_, _, err = runCLI(t, "Title", "convert", "--type", "first=list")
	require.ErrorContains(t, err, "item number must be a positive integer")

	_, _, err = runCLI(t, "Title", "convert", "-o", "yaml")
	require.ErrorContains(t, err, "invalid --output")

	_, _, err = runCLI(t, "Title", "convert", "missing.txt")
	require.ErrorContains(t, err, "read input")
}

func TestEditEmptyInput(t *testing.T) {
	isolate(t)
	_, _, err := runCLI(t, "", "edit", "-")
	require.ErrorIs(t, err, doc.ErrEmptyInput)
}

func TestTypes(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "", "types")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.True(t, strings.HasPrefix(lines[0], "key"))
	require.Contains(t, out, "Heading (H2)")
	require.Contains(t, out, "- [ ] text")
}

func TestConfigGenerateAndCheck(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg", "config.toml")

	out, _, err := runCLI(t, "", "config", "generate", "-o", path)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# linemark configuration (TOML)")

	_, _, err = runCLI(t, "", "config", "generate", "-o", path)
	require.ErrorContains(t, err, "config already exists")

	out, _, err = runCLI(t, "", "config", "generate", "-o", path, "--update")
	require.NoError(t, err)
	require.Contains(t, out, "Config already up to date")

	out, _, err = runCLI(t, "", "--config", path, "config", "check")
	require.NoError(t, err)
	require.Contains(t, out, "Config OK ("+path+")")
}

func TestConfigCheckReportsProblems(t *testing.T) {
	isolate(t)
	t.Setenv("LINEMARK_HISTORY_DEPTH", "0")
	_, _, err := runCLI(t, "", "config", "check", "--style", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "history.depth must be greater than 0")
	require.Contains(t, err.Error(), `preview.style "neon"`)
}

func TestConfigUsedBySplit(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "linemark")
	require.NoError(t, os.MkdirAll(cfgDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("[split]\nfirst_type = \"quote\"\n"), 0o600))

	out, _, err := runCLI(t, "Title\nalpha", "convert")
	require.NoError(t, err)
	require.Equal(t, "> Title\n\nalpha\n", out)
}

func TestCompletionGenerate(t *testing.T) {
	isolate(t)
	out, _, err := runCLI(t, "", "completion", "generate", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "linemark")
}

func TestCompleteBlockTypes(t *testing.T) {
	got, _ := completeBlockTypes(nil, nil, "ta")
	require.Equal(t, []string{"task"}, got)

	got, _ = completeBlockTypes(nil, nil, "")
	require.Len(t, got, 7)
}
