package format

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/linemark/internal/render"
	"github.com/mithrel/linemark/pkg/api"
)

var sample = []api.Item{
	{Text: "## Title", Type: api.BlockH2, Active: true},
	{Text: "a\tb", Type: api.BlockPlain, Active: false},
}

func TestWritePlainItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlainItems(&buf, sample, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "index"))
	require.Contains(t, lines[1], "h2")
	require.Contains(t, lines[2], "off")
	require.Contains(t, lines[2], `a\tb`)
}

func TestWriteJSONItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONItems(&buf, sample, "## Title", true))
	var got documentJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Items, 2)
	require.Equal(t, 2, got.Items[1].Index)
	require.False(t, got.Items[1].Active)
	require.Equal(t, "## Title", got.Markdown)
}

func TestWriteNDJSONItems(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNDJSONItems(&buf, sample))
	sc := bufio.NewScanner(&buf)
	n := 0
	for sc.Scan() {
		var it itemJSON
		require.NoError(t, json.Unmarshal(sc.Bytes(), &it))
		n++
		require.Equal(t, n, it.Index)
	}
	require.Equal(t, 2, n)
}

func TestWriteMarkdownAddsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "x"))
	require.Equal(t, "x\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, ""))
	require.Equal(t, "", buf.String())
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, "doc", "## Hi", render.DefaultOptions()))
	require.Contains(t, buf.String(), "<h2")
}

func TestWriteBlockTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlockTypes(&buf, false))
	require.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), len(api.AllBlockTypes()))
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePretty(&buf, "hello", "notty", 0))
	require.Contains(t, buf.String(), "hello")
}
