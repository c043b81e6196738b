package editor

import "strconv"

// DefaultFontSize is the logical size the toolbar starts at (~16px).
const DefaultFontSize = 3

// DefaultTextColor is the color swatch's initial value.
const DefaultTextColor = "#000000"

// Toolbar maps format state onto a control set and forwards activations to
// the session. It keeps only presentation state (current size, color,
// alignment); everything else is recomputed from the session after every
// action.
type Toolbar struct {
	session   *Session
	state     FormatState
	fontSize  int
	textColor string
	textAlign Alignment
}

// Control is one rendered toolbar entry.
type Control struct {
	Name    string
	Active  bool
	Enabled bool
}

func NewToolbar(s *Session) *Toolbar {
	t := &Toolbar{
		session:   s,
		fontSize:  DefaultFontSize,
		textColor: DefaultTextColor,
		textAlign: AlignLeft,
	}
	t.Refresh()
	return t
}

// Refresh recomputes the displayed format state from the session.
func (t *Toolbar) Refresh() {
	t.state = t.session.FormatState()
}

// State returns the format state as of the last Refresh.
func (t *Toolbar) State() FormatState { return t.state }

// FontSize returns the currently displayed logical font size.
func (t *Toolbar) FontSize() int { return t.fontSize }

// TextColor returns the currently displayed color.
func (t *Toolbar) TextColor() string { return t.textColor }

// TextAlign returns the currently displayed alignment.
func (t *Toolbar) TextAlign() Alignment { return t.textAlign }

// Controls renders the full control set from the tracked state.
func (t *Toolbar) Controls() []Control {
	return []Control{
		{Name: "bold", Active: t.state.Has(FormatBold), Enabled: true},
		{Name: "italic", Active: t.state.Has(FormatItalic), Enabled: true},
		{Name: "underline", Active: t.state.Has(FormatUnderline), Enabled: true},
		{Name: "orderedList", Active: t.state.Has(FormatOrderedList), Enabled: true},
		{Name: "unorderedList", Active: t.state.Has(FormatUnorderedList), Enabled: true},
		{Name: "alignCenter", Active: t.textAlign == AlignCenter, Enabled: true},
		{Name: "undo", Enabled: t.state.CanUndo},
		{Name: "redo", Enabled: t.state.CanRedo},
	}
}

// Toggle runs a toggling command (bold, italic, underline, lists) and
// refreshes the tracked state.
func (t *Toolbar) Toggle(cmd Command) {
	t.session.Execute(cmd, "")
	t.Refresh()
}

// ChangeFontSize moves the logical size by delta, clamped to the platform
// range 1..7.
func (t *Toolbar) ChangeFontSize(delta int) {
	size := t.fontSize + delta
	if size < MinFontSize {
		size = MinFontSize
	}
	if size > MaxFontSize {
		size = MaxFontSize
	}
	t.fontSize = size
	t.session.Execute(CmdFontSize, strconv.Itoa(size))
	t.Refresh()
}

// SetTextColor applies a color straight from the native color input.
func (t *Toolbar) SetTextColor(color string) {
	t.textColor = color
	t.session.Execute(CmdForeColor, color)
	t.Refresh()
}

// ToggleAlignment flips between the only two supported alignments.
func (t *Toolbar) ToggleAlignment() {
	if t.textAlign == AlignLeft {
		t.textAlign = AlignCenter
		t.session.Execute(CmdJustifyCenter, "")
	} else {
		t.textAlign = AlignLeft
		t.session.Execute(CmdJustifyLeft, "")
	}
	t.Refresh()
}

// Undo runs undo when the tracker says it is available.
func (t *Toolbar) Undo() {
	if t.state.CanUndo {
		t.session.Execute(CmdUndo, "")
	}
	t.Refresh()
}

// Redo runs redo when the tracker says it is available.
func (t *Toolbar) Redo() {
	if t.state.CanRedo {
		t.session.Execute(CmdRedo, "")
	}
	t.Refresh()
}
