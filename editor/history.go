package editor

// historyLimit caps how many snapshots a session keeps. The original editor
// leaned on the platform's unbounded undo buffer; a bounded stack keeps a
// long-lived session from holding every intermediate document.
const historyLimit = 200

// History is a snapshot-based undo/redo stack over documents.
type History struct {
	undo []*Document
	redo []*Document
}

// Push records the document state as it was before a mutation. Any redo
// entries are discarded, matching native editing behavior.
func (h *History) Push(d *Document) {
	h.undo = append(h.undo, d.Clone())
	if len(h.undo) > historyLimit {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo exchanges the current document for the most recent snapshot.
func (h *History) Undo(current *Document) (*Document, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return last, true
}

// Redo reverses the most recent Undo.
func (h *History) Redo(current *Document) (*Document, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	last := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return last, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
