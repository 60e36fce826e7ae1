package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/linemark/pkg/api"
)

func TestTemplate(t *testing.T) {
	tests := []struct {
		typ  api.BlockType
		want string
	}{
		{api.BlockH2, "## hello"},
		{api.BlockH3, "### hello"},
		{api.BlockList, "- hello"},
		{api.BlockTask, "- [ ] hello"},
		{api.BlockCode, "```\nhello\n```"},
		{api.BlockQuote, "> hello"},
		{api.BlockPlain, "hello"},
		{api.BlockType("bogus"), "hello"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Template(tc.typ, "hello"), string(tc.typ))
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		want api.BlockType
	}{
		{"## Title", api.BlockH2},
		{"### Sub", api.BlockH3},
		{"#### Deeper", api.BlockPlain},
		{"- [ ] todo", api.BlockTask},
		{"- [x] done", api.BlockTask},
		{"- item", api.BlockList},
		{"-item", api.BlockPlain},
		{"> said", api.BlockQuote},
		{"```go", api.BlockCode},
		{"", api.BlockPlain},
		{"just words", api.BlockPlain},
	}
	for i, tc := range tests {
		if got := Detect(tc.in); got != tc.want {
			t.Fatalf("case %d (%q): got %q want %q", i, tc.in, got, tc.want)
		}
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"## Title", "Title"},
		{"### Title", "Title"},
		{"- [ ] task", "task"},
		{"- [x] task", "task"},
		{"- item", "item"},
		{">   quoted", "quoted"},
		{"```\ncode\n```", "code"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Strip(tc.in), tc.in)
	}
}

func TestRetypeRoundTrip(t *testing.T) {
	text := "hello world"
	cur := Template(api.BlockPlain, text)
	for _, typ := range api.AllBlockTypes() {
		cur = Retype(cur, typ)
		require.Equal(t, Template(typ, text), cur, "retype to %s", typ)
	}
	require.Equal(t, text, Retype(cur, api.BlockPlain))
}

func TestLabelsAndGlyphs(t *testing.T) {
	for _, typ := range api.AllBlockTypes() {
		assert.NotEmpty(t, Label(typ))
		assert.NotEqual(t, "?", Glyph(typ))
		assert.NotEmpty(t, Sample(typ))
	}
	assert.Equal(t, "?", Glyph(api.BlockType("nope")))
}
