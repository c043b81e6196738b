package editor

// PasteHTML inserts a pasted fragment into the session. Images found in the
// fragment get their resize affordance attached here, synchronously, at the
// point of insertion; there is no observer watching for them afterwards.
func (s *Session) PasteHTML(fragment string) error {
	if !s.focused {
		return nil
	}
	doc, err := ParseFragment(fragment)
	if err != nil {
		return err
	}
	if len(doc.Blocks) == 1 && len(doc.Blocks[0].Runs) == 0 && doc.Blocks[0].Image == nil {
		return nil
	}

	s.checkpoint()
	at := s.blockIndexAt(s.sel.Start) + 1
	rest := make([]Block, len(s.doc.Blocks[at:]))
	copy(rest, s.doc.Blocks[at:])
	s.doc.Blocks = append(s.doc.Blocks[:at], doc.Blocks...)
	s.doc.Blocks = append(s.doc.Blocks, rest...)

	// Attach is idempotent, so images that already carry a resizer from
	// ParseFragment are left alone rather than wrapped again.
	for i := range s.doc.Blocks {
		if img := s.doc.Blocks[i].Image; img != nil {
			AttachResizer(img)
		}
	}
	return nil
}

// Images returns every image block in document order.
func (s *Session) Images() []*Image {
	var out []*Image
	for i := range s.doc.Blocks {
		if img := s.doc.Blocks[i].Image; img != nil {
			out = append(out, img)
		}
	}
	return out
}

// IsEmpty reports whether the document holds neither visible text nor
// images. Used by the commit path to decide between saving and discarding.
func (s *Session) IsEmpty() bool {
	for _, b := range s.doc.Blocks {
		if b.Image != nil {
			return false
		}
		for _, r := range b.Runs {
			for _, c := range r.Text {
				if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
					return false
				}
			}
		}
	}
	return true
}

// blockIndexAt returns the index of the block containing the offset.
func (s *Session) blockIndexAt(offset int) int {
	for i := range s.doc.Blocks {
		bs, be := s.doc.blockRange(i)
		if offset >= bs && offset <= be {
			return i
		}
	}
	return len(s.doc.Blocks) - 1
}
