// Package editor implements the rich-text editing engine: an owned document
// model with explicit commands, undo/redo history and format-state tracking.
// Content is persisted as an HTML fragment; this package is the only code
// that interprets it.
package editor

// Run is a span of text carrying uniform inline formatting.
type Run struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	FontSize  int    // logical sizes 1..7, 0 means default
	Color     string // empty means inherit
}

// BlockKind distinguishes the block-level structures the editor produces.
type BlockKind int

const (
	Paragraph BlockKind = iota
	OrderedItem
	UnorderedItem
	ImageBlock
)

// Alignment is a strict two-state toggle; the toolbar never produces
// right or justify.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
)

// Block is a paragraph, a list item, or an image.
type Block struct {
	Kind  BlockKind
	Align Alignment
	Runs  []Run
	Image *Image
}

// Document is an ordered sequence of blocks.
type Document struct {
	Blocks []Block
}

// Selection addresses a range of the document's text by rune offsets over
// the concatenation of all block texts. Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// IsCaret reports whether the selection is collapsed.
func (s Selection) IsCaret() bool { return s.Start == s.End }

// NewDocument returns a document holding a single empty paragraph.
func NewDocument() *Document {
	return &Document{Blocks: []Block{{Kind: Paragraph}}}
}

// Clone deep-copies the document, including image nodes, so history
// snapshots never alias live state.
func (d *Document) Clone() *Document {
	out := &Document{Blocks: make([]Block, len(d.Blocks))}
	for i, b := range d.Blocks {
		nb := b
		nb.Runs = make([]Run, len(b.Runs))
		copy(nb.Runs, b.Runs)
		if b.Image != nil {
			img := *b.Image
			nb.Image = &img
		}
		out.Blocks[i] = nb
	}
	return out
}

// PlainText concatenates every run's text, one newline between blocks.
func (d *Document) PlainText() string {
	var out []rune
	for i, b := range d.Blocks {
		if i > 0 {
			out = append(out, '\n')
		}
		for _, r := range b.Runs {
			out = append(out, []rune(r.Text)...)
		}
	}
	return string(out)
}

// Length returns the rune length of the document text, counting the
// newline separators that PlainText inserts between blocks.
func (d *Document) Length() int {
	n := 0
	for i, b := range d.Blocks {
		if i > 0 {
			n++
		}
		for _, r := range b.Runs {
			n += len([]rune(r.Text))
		}
	}
	return n
}

// blockRange returns the text offsets [start, end) covered by block i.
func (d *Document) blockRange(i int) (int, int) {
	start := 0
	for j := 0; j < i; j++ {
		for _, r := range d.Blocks[j].Runs {
			start += len([]rune(r.Text))
		}
		start++ // separator
	}
	end := start
	for _, r := range d.Blocks[i].Runs {
		end += len([]rune(r.Text))
	}
	return start, end
}

// splitRuns splits block b so that a run boundary exists at local offset off.
func splitRuns(b *Block, off int) {
	pos := 0
	for i := range b.Runs {
		n := len([]rune(b.Runs[i].Text))
		if off == pos || off == pos+n {
			return
		}
		if off > pos && off < pos+n {
			left := b.Runs[i]
			right := b.Runs[i]
			runes := []rune(b.Runs[i].Text)
			left.Text = string(runes[:off-pos])
			right.Text = string(runes[off-pos:])
			rest := append([]Run{left, right}, b.Runs[i+1:]...)
			b.Runs = append(b.Runs[:i], rest...)
			return
		}
		pos += n
	}
}

// eachSelectedRun calls fn for every run that intersects the selection,
// splitting runs at the selection edges first so the callback can mutate
// whole runs.
func (d *Document) eachSelectedRun(sel Selection, fn func(*Run)) {
	for i := range d.Blocks {
		bs, be := d.blockRange(i)
		if sel.End <= bs || sel.Start >= be {
			continue
		}
		b := &d.Blocks[i]
		lo := max(sel.Start-bs, 0)
		hi := min(sel.End-bs, be-bs)
		splitRuns(b, lo)
		splitRuns(b, hi)
		pos := 0
		for j := range b.Runs {
			n := len([]rune(b.Runs[j].Text))
			if pos >= lo && pos+n <= hi && n > 0 {
				fn(&b.Runs[j])
			}
			pos += n
		}
	}
}

// eachSelectedBlock calls fn for every block the selection touches. A caret
// touches the block containing it.
func (d *Document) eachSelectedBlock(sel Selection, fn func(*Block)) {
	for i := range d.Blocks {
		bs, be := d.blockRange(i)
		touches := sel.Start < be && sel.End > bs
		if bs == be {
			touches = sel.Start <= bs && sel.End >= bs
		} else if sel.IsCaret() {
			touches = sel.Start >= bs && sel.Start <= be
		}
		if touches {
			fn(&d.Blocks[i])
		}
	}
}

// runAt returns the run containing the rune just before offset, which is
// the run whose formatting a caret inherits. Nil when the document is empty.
func (d *Document) runAt(offset int) *Run {
	if offset <= 0 {
		if len(d.Blocks) > 0 && len(d.Blocks[0].Runs) > 0 {
			return &d.Blocks[0].Runs[0]
		}
		return nil
	}
	for i := range d.Blocks {
		bs, be := d.blockRange(i)
		if offset < bs || offset > be {
			continue
		}
		b := &d.Blocks[i]
		pos := bs
		for j := range b.Runs {
			n := len([]rune(b.Runs[j].Text))
			if offset > pos && offset <= pos+n {
				return &b.Runs[j]
			}
			pos += n
		}
		if len(b.Runs) > 0 {
			return &b.Runs[len(b.Runs)-1]
		}
	}
	return nil
}

// insertText inserts plain text at the given offset, inheriting the
// formatting of the run the caret sits in.
func (d *Document) insertText(offset int, text string) {
	if len(d.Blocks) == 0 {
		d.Blocks = []Block{{Kind: Paragraph}}
	}
	for i := range d.Blocks {
		bs, be := d.blockRange(i)
		if offset < bs || offset > be {
			continue
		}
		b := &d.Blocks[i]
		if b.Kind == ImageBlock {
			continue
		}
		lo := offset - bs
		if len(b.Runs) == 0 {
			b.Runs = []Run{{Text: text}}
			return
		}
		splitRuns(b, lo)
		pos := 0
		for j := range b.Runs {
			n := len([]rune(b.Runs[j].Text))
			if lo <= pos+n {
				runes := []rune(b.Runs[j].Text)
				at := lo - pos
				b.Runs[j].Text = string(runes[:at]) + text + string(runes[at:])
				return
			}
			pos += n
		}
		last := len(b.Runs) - 1
		b.Runs[last].Text += text
		return
	}
	// Past the end: append to the final text block.
	for i := len(d.Blocks) - 1; i >= 0; i-- {
		if d.Blocks[i].Kind != ImageBlock {
			b := &d.Blocks[i]
			if len(b.Runs) == 0 {
				b.Runs = []Run{{Text: text}}
			} else {
				b.Runs[len(b.Runs)-1].Text += text
			}
			return
		}
	}
	d.Blocks = append(d.Blocks, Block{Kind: Paragraph, Runs: []Run{{Text: text}}})
}
