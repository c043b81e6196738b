package editor

// Session owns one document, its selection and its history. It replaces the
// ambient platform editing state the app previously leaned on: every query
// and mutation goes through an explicit session instance.
type Session struct {
	doc     *Document
	sel     Selection
	focused bool
	history *History
}

// NewSession returns an empty focused session.
func NewSession() *Session {
	return &Session{
		doc:     NewDocument(),
		focused: true,
		history: &History{},
	}
}

// LoadSession parses a stored HTML fragment into an editable session.
func LoadSession(fragment string) (*Session, error) {
	doc, err := ParseFragment(fragment)
	if err != nil {
		return nil, err
	}
	s := NewSession()
	s.doc = doc
	return s, nil
}

// Document exposes the live document for inspection.
func (s *Session) Document() *Document { return s.doc }

// Selection returns the current selection.
func (s *Session) Selection() Selection { return s.sel }

// Select sets the selection, clamped to the document bounds.
func (s *Session) Select(start, end int) {
	n := s.doc.Length()
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if end < start {
		start, end = end, start
	}
	s.sel = Selection{Start: start, End: end}
	s.focused = true
}

// SelectAll selects the whole document.
func (s *Session) SelectAll() {
	s.Select(0, s.doc.Length())
}

// Focus marks the session's editable region as holding the selection.
func (s *Session) Focus() { s.focused = true }

// Blur drops focus; formatting commands become no-ops until refocused.
func (s *Session) Blur() { s.focused = false }

// Focused reports whether the editable region holds the selection.
func (s *Session) Focused() bool { return s.focused }

// InsertText types text at the caret, inheriting the surrounding
// formatting. A range selection is not replaced; the text lands at the
// selection start.
func (s *Session) InsertText(text string) {
	if !s.focused || text == "" {
		return
	}
	s.checkpoint()
	s.doc.insertText(s.sel.Start, text)
	at := s.sel.Start + len([]rune(text))
	s.sel = Selection{Start: at, End: at}
}

// InsertImage appends an image block after the block containing the caret
// and attaches its resize affordance immediately, replacing the old
// mutation-observer approach with an explicit insertion step.
func (s *Session) InsertImage(src string, width, height int) *Image {
	s.checkpoint()
	img := &Image{Src: src, Width: width, Height: height}
	AttachResizer(img)
	s.doc.Blocks = append(s.doc.Blocks, Block{Kind: ImageBlock, Image: img})
	return img
}

// HTML serializes the document to the persisted fragment form.
func (s *Session) HTML() string {
	return RenderHTML(s.doc)
}

// PlainText returns the document text with markup stripped.
func (s *Session) PlainText() string {
	return s.doc.PlainText()
}

// checkpoint snapshots the document before a mutation.
func (s *Session) checkpoint() {
	s.history.Push(s.doc)
}

func (s *Session) undo() {
	if d, ok := s.history.Undo(s.doc); ok {
		s.doc = d
		s.clampSelection()
	}
}

func (s *Session) redo() {
	if d, ok := s.history.Redo(s.doc); ok {
		s.doc = d
		s.clampSelection()
	}
}

func (s *Session) clampSelection() {
	n := s.doc.Length()
	s.sel.Start = min(s.sel.Start, n)
	s.sel.End = min(s.sel.End, n)
}
