// Package doc holds the editable item list and its undo history.
package doc

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mithrel/linemark/internal/blocks"
	"github.com/mithrel/linemark/pkg/api"
)

var (
	ErrEmptyInput      = errors.New("no input text: type or load some text first")
	ErrLastItem        = errors.New("cannot delete the last item")
	ErrIndexOutOfRange = errors.New("item index out of range")
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
)

// Separator joins active items in the assembled Markdown.
const Separator = "\n\n"

var lineBreakRe = regexp.MustCompile(`\r\n|\n|\r`)

// SplitOptions control how input lines become items.
type SplitOptions struct {
	// FirstType is applied to the first line with its template.
	FirstType api.BlockType
	// Detect guesses later line types from their prefix; otherwise they are plain.
	Detect bool
	// HistoryDepth bounds the undo stack.
	HistoryDepth int
}

// DefaultSplitOptions mirrors the stock configuration.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{FirstType: api.BlockH2, Detect: true, HistoryDepth: DefaultHistoryDepth}
}

// Document is the ordered item list being edited.
type Document struct {
	items   []api.Item
	history *History
}

// New returns a document holding a copy of items.
func New(items []api.Item, depth int) *Document {
	return &Document{
		items:   api.Snapshot(items).Clone(),
		history: NewHistory(depth),
	}
}

// Split turns free text into a document with one item per line.
func Split(text string, opts SplitOptions) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	first := opts.FirstType
	if !first.Valid() {
		first = api.BlockH2
	}
	lines := lineBreakRe.Split(text, -1)
	items := make([]api.Item, 0, len(lines))
	for i, line := range lines {
		it := api.Item{Text: line, Type: api.BlockPlain, Active: true}
		switch {
		case i == 0:
			it.Type = first
			it.Text = blocks.Retype(line, first)
		case opts.Detect:
			it.Type = blocks.Detect(line)
		}
		items = append(items, it)
	}
	return &Document{items: items, history: NewHistory(opts.HistoryDepth)}, nil
}

// Len returns the number of items.
func (d *Document) Len() int { return len(d.items) }

// Items returns a copy of the current items.
func (d *Document) Items() []api.Item { return api.Snapshot(d.items).Clone() }

// Item returns the item at i.
func (d *Document) Item(i int) (api.Item, error) {
	if err := d.check(i); err != nil {
		return api.Item{}, err
	}
	return d.items[i], nil
}

// History exposes the undo/redo stacks.
func (d *Document) History() *History { return d.history }

// ActiveCount returns the number of active items.
func (d *Document) ActiveCount() int {
	n := 0
	for _, it := range d.items {
		if it.Active {
			n++
		}
	}
	return n
}

// Markdown joins the text of active, non-blank items.
func (d *Document) Markdown() string {
	parts := make([]string, 0, len(d.items))
	for _, it := range d.items {
		if !it.Active || strings.TrimSpace(it.Text) == "" {
			continue
		}
		parts = append(parts, it.Text)
	}
	return strings.Join(parts, Separator)
}

// Insert adds an empty plain item after position after; -1 inserts at the top.
// It returns the index of the new item.
func (d *Document) Insert(after int) (int, error) {
	if after < -1 || after >= len(d.items) {
		return 0, fmt.Errorf("insert after %d: %w", after, ErrIndexOutOfRange)
	}
	d.record()
	at := after + 1
	d.items = append(d.items, api.Item{})
	copy(d.items[at+1:], d.items[at:])
	d.items[at] = api.Item{Type: api.BlockPlain, Active: true}
	return at, nil
}

// Delete removes the item at i. The last remaining item cannot be removed.
func (d *Document) Delete(i int) error {
	if err := d.check(i); err != nil {
		return err
	}
	if len(d.items) <= 1 {
		return ErrLastItem
	}
	d.record()
	d.items = append(d.items[:i], d.items[i+1:]...)
	return nil
}

// Toggle flips the active flag of item i and returns the new value.
func (d *Document) Toggle(i int) (bool, error) {
	if err := d.check(i); err != nil {
		return false, err
	}
	d.record()
	d.items[i].Active = !d.items[i].Active
	return d.items[i].Active, nil
}

// SetType reapplies the template of t to the current text of item i.
func (d *Document) SetType(i int, t api.BlockType) error {
	if err := d.check(i); err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("set type of item %d: unknown block type %q", i+1, t)
	}
	text := blocks.Retype(d.items[i].Text, t)
	if t == d.items[i].Type && text == d.items[i].Text {
		return nil
	}
	d.record()
	d.items[i].Text = text
	d.items[i].Type = t
	return nil
}

// SetText replaces the text of item i verbatim.
func (d *Document) SetText(i int, text string) error {
	if err := d.check(i); err != nil {
		return err
	}
	if d.items[i].Text == text {
		return nil
	}
	d.record()
	d.items[i].Text = text
	return nil
}

// Decorate applies a decoration to the body of item i.
func (d *Document) Decorate(i int, dec blocks.Decoration) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.record()
	d.items[i].Text = blocks.DecorateBody(dec, d.items[i].Text)
	return nil
}

// Move shifts item i by delta positions and returns its new index.
func (d *Document) Move(i, delta int) (int, error) {
	if err := d.check(i); err != nil {
		return i, err
	}
	j := i + delta
	if j < 0 {
		j = 0
	}
	if j >= len(d.items) {
		j = len(d.items) - 1
	}
	if j == i {
		return i, nil
	}
	d.record()
	it := d.items[i]
	d.items = append(d.items[:i], d.items[i+1:]...)
	d.items = append(d.items[:j], append([]api.Item{it}, d.items[j:]...)...)
	return j, nil
}

// Undo restores the previous snapshot.
func (d *Document) Undo() error {
	prev, ok := d.history.Undo(d.items)
	if !ok {
		return ErrNothingToUndo
	}
	d.items = prev
	return nil
}

// Redo reverses the last Undo.
func (d *Document) Redo() error {
	next, ok := d.history.Redo(d.items)
	if !ok {
		return ErrNothingToRedo
	}
	d.items = next
	return nil
}

// Fingerprint hashes the current items; equal lists give equal fingerprints.
func (d *Document) Fingerprint() string { return api.Snapshot(d.items).Hash() }

func (d *Document) record() { d.history.Record(d.items) }

func (d *Document) check(i int) error {
	if i < 0 || i >= len(d.items) {
		return fmt.Errorf("item %d: %w", i+1, ErrIndexOutOfRange)
	}
	return nil
}
