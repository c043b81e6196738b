package editor

import "strconv"

// Command names mirror the native editing command set the app was built
// around; anything outside this set is silently ignored.
type Command string

const (
	CmdBold          Command = "bold"
	CmdItalic        Command = "italic"
	CmdUnderline     Command = "underline"
	CmdOrderedList   Command = "insertOrderedList"
	CmdUnorderedList Command = "insertUnorderedList"
	CmdUndo          Command = "undo"
	CmdRedo          Command = "redo"
	CmdFontSize      Command = "fontSize"
	CmdForeColor     Command = "foreColor"
	CmdJustifyCenter Command = "justifyCenter"
	CmdJustifyLeft   Command = "justifyLeft"
)

const (
	MinFontSize = 1
	MaxFontSize = 7
)

// Execute applies a command to the current selection. Formatting commands
// are no-ops when the session holds no selection; undo and redo work
// regardless of focus.
func (s *Session) Execute(cmd Command, value string) {
	switch cmd {
	case CmdUndo:
		s.undo()
		return
	case CmdRedo:
		s.redo()
		return
	}

	if !s.focused {
		return
	}

	switch cmd {
	case CmdBold:
		s.toggleInline(func(r *Run) bool { return r.Bold }, func(r *Run, on bool) { r.Bold = on })
	case CmdItalic:
		s.toggleInline(func(r *Run) bool { return r.Italic }, func(r *Run, on bool) { r.Italic = on })
	case CmdUnderline:
		s.toggleInline(func(r *Run) bool { return r.Underline }, func(r *Run, on bool) { r.Underline = on })
	case CmdOrderedList:
		s.toggleList(OrderedItem)
	case CmdUnorderedList:
		s.toggleList(UnorderedItem)
	case CmdFontSize:
		size, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		if size < MinFontSize {
			size = MinFontSize
		}
		if size > MaxFontSize {
			size = MaxFontSize
		}
		s.checkpoint()
		s.doc.eachSelectedRun(s.sel, func(r *Run) { r.FontSize = size })
	case CmdForeColor:
		if value == "" {
			return
		}
		s.checkpoint()
		s.doc.eachSelectedRun(s.sel, func(r *Run) { r.Color = value })
	case CmdJustifyCenter:
		s.checkpoint()
		s.doc.eachSelectedBlock(s.sel, func(b *Block) { b.Align = AlignCenter })
	case CmdJustifyLeft:
		s.checkpoint()
		s.doc.eachSelectedBlock(s.sel, func(b *Block) { b.Align = AlignLeft })
	}
}

// toggleInline mirrors the native toggle semantics: the flag is set unless
// every selected run already carries it, in which case it is cleared.
func (s *Session) toggleInline(get func(*Run) bool, set func(*Run, bool)) {
	all := true
	seen := false
	s.doc.eachSelectedRun(s.sel, func(r *Run) {
		seen = true
		if !get(r) {
			all = false
		}
	})
	if !seen {
		return
	}
	s.checkpoint()
	s.doc.eachSelectedRun(s.sel, func(r *Run) { set(r, !all) })
}

// toggleList converts the selected blocks to the given list kind, or back
// to paragraphs when they all already are that kind. Ordered and unordered
// lists are mutually exclusive.
func (s *Session) toggleList(kind BlockKind) {
	all := true
	seen := false
	s.doc.eachSelectedBlock(s.sel, func(b *Block) {
		if b.Kind == ImageBlock {
			return
		}
		seen = true
		if b.Kind != kind {
			all = false
		}
	})
	if !seen {
		return
	}
	target := kind
	if all {
		target = Paragraph
	}
	s.checkpoint()
	s.doc.eachSelectedBlock(s.sel, func(b *Block) {
		if b.Kind != ImageBlock {
			b.Kind = target
		}
	})
}
