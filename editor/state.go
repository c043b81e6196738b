package editor

// Format names the inline and list formats the toolbar can reflect.
type Format string

const (
	FormatBold          Format = "bold"
	FormatItalic        Format = "italic"
	FormatUnderline     Format = "underline"
	FormatOrderedList   Format = "orderedList"
	FormatUnorderedList Format = "unorderedList"
)

// FormatState is the transient per-session view the toolbar renders from.
// It must be recomputed after every command and every text input; nothing
// pushes notifications when it goes stale.
type FormatState struct {
	Active  map[Format]bool
	CanUndo bool
	CanRedo bool
}

// Has reports whether the given format is active.
func (f FormatState) Has(format Format) bool {
	return f.Active[format]
}

// FormatState inspects the current selection and history to produce the
// toolbar's view. A format counts as active only when every selected run
// carries it; at a caret, the run the caret sits in decides.
func (s *Session) FormatState() FormatState {
	state := FormatState{
		Active:  make(map[Format]bool),
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
	}
	if !s.focused {
		return state
	}

	bold, italic, underline := true, true, true
	seen := false
	inspect := func(r *Run) {
		seen = true
		bold = bold && r.Bold
		italic = italic && r.Italic
		underline = underline && r.Underline
	}
	if s.sel.IsCaret() {
		if r := s.doc.runAt(s.sel.Start); r != nil {
			inspect(r)
		}
	} else {
		s.doc.eachSelectedRun(s.sel, inspect)
	}
	if seen {
		state.Active[FormatBold] = bold
		state.Active[FormatItalic] = italic
		state.Active[FormatUnderline] = underline
	}

	ordered, unordered := true, true
	blocks := 0
	s.doc.eachSelectedBlock(s.sel, func(b *Block) {
		if b.Kind == ImageBlock {
			return
		}
		blocks++
		ordered = ordered && b.Kind == OrderedItem
		unordered = unordered && b.Kind == UnorderedItem
	})
	if blocks > 0 {
		state.Active[FormatOrderedList] = ordered
		state.Active[FormatUnorderedList] = unordered
	}

	for f, on := range state.Active {
		if !on {
			delete(state.Active, f)
		}
	}
	return state
}
