package doc

import "github.com/mithrel/linemark/pkg/api"

// DefaultHistoryDepth bounds the undo stack when no depth is configured.
const DefaultHistoryDepth = 50

// History keeps bounded undo and redo stacks of item snapshots.
type History struct {
	depth int
	undo  []api.Snapshot
	redo  []api.Snapshot
	top   string // hash of undo[len-1]
}

// NewHistory returns a History holding at most depth undo snapshots.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record pushes the state before a destructive edit and clears redo.
// A state identical to the current top of the undo stack is not pushed again.
func (h *History) Record(state api.Snapshot) {
	h.redo = nil
	sum := state.Hash()
	if len(h.undo) > 0 && sum == h.top {
		return
	}
	h.undo = append(h.undo, state.Clone())
	if len(h.undo) > h.depth {
		h.undo = append([]api.Snapshot(nil), h.undo[len(h.undo)-h.depth:]...)
	}
	h.top = sum
}

// Undo returns the previous snapshot, saving current for Redo.
func (h *History) Undo(current api.Snapshot) (api.Snapshot, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.refreshTop()
	h.redo = append(h.redo, current.Clone())
	return prev.Clone(), true
}

// Redo reverses the most recent Undo, saving current for Undo.
func (h *History) Redo(current api.Snapshot) (api.Snapshot, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	if len(h.undo) > h.depth {
		h.undo = append([]api.Snapshot(nil), h.undo[len(h.undo)-h.depth:]...)
	}
	h.refreshTop()
	return next.Clone(), true
}

// Reset drops both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
	h.top = ""
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) { return len(h.undo), len(h.redo) }

func (h *History) refreshTop() {
	if len(h.undo) == 0 {
		h.top = ""
		return
	}
	h.top = h.undo[len(h.undo)-1].Hash()
}
