package doc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/pkg/api"
)

func split(t *testing.T, text string) *Document {
	t.Helper()
	d, err := Split(text, DefaultSplitOptions())
	require.NoError(t, err)
	return d
}

func TestSplitLines(t *testing.T) {
	d := split(t, "Title\r\nfirst\nsecond\rthird")
	require.Equal(t, 4, d.Len())

	items := d.Items()
	require.Equal(t, api.BlockH2, items[0].Type)
	require.Equal(t, "## Title", items[0].Text)
	for _, it := range items[1:] {
		require.Equal(t, api.BlockPlain, it.Type)
		require.True(t, it.Active)
	}
	require.Equal(t, "## Title\n\nfirst\n\nsecond\n\nthird", d.Markdown())
}

func TestSplitDetectsPrefixes(t *testing.T) {
	d := split(t, "## Already\n- a\n- [ ] b\n> c\n### d")
	items := d.Items()
	require.Equal(t, "## Already", items[0].Text, "first line is retyped, not double-prefixed")
	require.Equal(t, api.BlockList, items[1].Type)
	require.Equal(t, "- a", items[1].Text)
	require.Equal(t, api.BlockTask, items[2].Type)
	require.Equal(t, api.BlockQuote, items[3].Type)
	require.Equal(t, api.BlockH3, items[4].Type)
}

func TestSplitWithoutDetection(t *testing.T) {
	d, err := Split("head\n- a", SplitOptions{FirstType: api.BlockH3})
	require.NoError(t, err)
	items := d.Items()
	require.Equal(t, "### head", items[0].Text)
	require.Equal(t, api.BlockPlain, items[1].Type)
}

func TestSplitEmptyInput(t *testing.T) {
	_, err := Split(" \n\t\n", DefaultSplitOptions())
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestSplitKeepsBlankLinesOutOfMarkdown(t *testing.T) {
	d := split(t, "a\n\nb")
	require.Equal(t, 3, d.Len())
	require.Equal(t, "## a\n\nb", d.Markdown())
}

func TestToggleExcludesFromMarkdown(t *testing.T) {
	d := split(t, "T\none\ntwo")
	active, err := d.Toggle(1)
	require.NoError(t, err)
	require.False(t, active)
	require.Equal(t, "## T\n\ntwo", d.Markdown())
	require.Equal(t, 2, d.ActiveCount())

	active, err = d.Toggle(1)
	require.NoError(t, err)
	require.True(t, active)
	require.Equal(t, "## T\n\none\n\ntwo", d.Markdown())
}

func TestSetTypeReappliesTemplate(t *testing.T) {
	d := split(t, "T\nbuy milk")
	require.NoError(t, d.SetType(1, api.BlockTask))
	it, _ := d.Item(1)
	require.Equal(t, "- [ ] buy milk", it.Text)

	require.NoError(t, d.SetType(1, api.BlockCode))
	it, _ = d.Item(1)
	require.Equal(t, "```\nbuy milk\n```", it.Text)

	require.NoError(t, d.SetType(0, api.BlockPlain))
	it, _ = d.Item(0)
	require.Equal(t, "T", it.Text)

	require.Error(t, d.SetType(1, api.BlockType("h9")))
}

func TestInsertAndDelete(t *testing.T) {
	d := split(t, "T\na")
	at, err := d.Insert(0)
	require.NoError(t, err)
	require.Equal(t, 1, at)
	require.Equal(t, 3, d.Len())
	it, _ := d.Item(1)
	require.Equal(t, api.Item{Type: api.BlockPlain, Active: true}, it)

	at, err = d.Insert(-1)
	require.NoError(t, err)
	require.Equal(t, 0, at)

	_, err = d.Insert(7)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, d.Delete(0))
	require.NoError(t, d.Delete(1))
	require.NoError(t, d.Delete(1))
	require.Equal(t, 1, d.Len())
	require.ErrorIs(t, d.Delete(0), ErrLastItem)
	require.ErrorIs(t, d.Delete(4), ErrIndexOutOfRange)
}

func TestMove(t *testing.T) {
	d := split(t, "T\na\nb")
	j, err := d.Move(2, -1)
	require.NoError(t, err)
	require.Equal(t, 1, j)
	require.Equal(t, "## T\n\nb\n\na", d.Markdown())

	j, err = d.Move(0, 10)
	require.NoError(t, err)
	require.Equal(t, 2, j)
	require.Equal(t, "b\n\na\n\n## T", d.Markdown())

	undo, _ := d.History().Len()
	j, err = d.Move(0, -1)
	require.NoError(t, err)
	require.Equal(t, 0, j)
	after, _ := d.History().Len()
	require.Equal(t, undo, after, "no-op move records nothing")
}

func TestDecorate(t *testing.T) {
	d := split(t, "T\n- item")
	require.NoError(t, d.Decorate(1, blocks.DecorBold))
	it, _ := d.Item(1)
	require.Equal(t, "- **item**", it.Text)
}

func TestUndoRedo(t *testing.T) {
	d := split(t, "T\na\nb")
	before := d.Items()

	require.NoError(t, d.SetType(1, api.BlockList))
	afterType := d.Items()
	_, err := d.Toggle(2)
	require.NoError(t, err)

	require.NoError(t, d.Undo())
	require.Equal(t, afterType, d.Items())
	require.NoError(t, d.Undo())
	require.Equal(t, before, d.Items())
	require.ErrorIs(t, d.Undo(), ErrNothingToUndo)

	require.NoError(t, d.Redo())
	require.Equal(t, afterType, d.Items())

	// A new edit discards redo.
	require.NoError(t, d.SetText(0, "## New"))
	require.ErrorIs(t, d.Redo(), ErrNothingToRedo)
}

func TestSetTextNoChangeRecordsNothing(t *testing.T) {
	d := split(t, "T\na")
	require.NoError(t, d.SetText(1, "a"))
	require.False(t, d.History().CanUndo())
}

func TestSetTypeSameTypeRecordsNothing(t *testing.T) {
	d := split(t, "T\na")
	require.NoError(t, d.SetType(1, api.BlockPlain))
	require.False(t, d.History().CanUndo())

	require.NoError(t, d.SetType(1, api.BlockTask))
	require.True(t, d.History().CanUndo())
	require.NoError(t, d.SetType(1, api.BlockTask))
	require.NoError(t, d.Undo())
	it, _ := d.Item(1)
	require.Equal(t, "a", it.Text)
	require.Equal(t, api.BlockPlain, it.Type)
}

func TestIndexErrorsWrap(t *testing.T) {
	d := split(t, "T")
	_, err := d.Toggle(3)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Contains(t, err.Error(), "item 4")
}

func TestFingerprintTracksContent(t *testing.T) {
	d := split(t, "T\na")
	fp := d.Fingerprint()
	_, _ = d.Toggle(1)
	require.NotEqual(t, fp, d.Fingerprint())
	require.NoError(t, d.Undo())
	require.Equal(t, fp, d.Fingerprint())
}

func TestNewCopiesItems(t *testing.T) {
	src := []api.Item{{Text: "x", Type: api.BlockPlain, Active: true}}
	d := New(src, 0)
	src[0].Text = "y"
	it, _ := d.Item(0)
	require.Equal(t, "x", it.Text)
}
