package editor

import (
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes a document to the HTML fragment form notes are
// persisted in. The markup mirrors what the native editing commands used
// to produce: b/i/u wrappers, font tags with logical sizes, p with a
// text-align style, ol/ul/li and img with explicit dimensions.
func RenderHTML(d *Document) string {
	var sb strings.Builder
	i := 0
	for i < len(d.Blocks) {
		b := d.Blocks[i]
		switch b.Kind {
		case OrderedItem, UnorderedItem:
			tag := "ol"
			if b.Kind == UnorderedItem {
				tag = "ul"
			}
			sb.WriteString("<" + tag + ">")
			for i < len(d.Blocks) && d.Blocks[i].Kind == b.Kind {
				sb.WriteString("<li" + alignAttr(d.Blocks[i].Align) + ">")
				renderRuns(&sb, d.Blocks[i].Runs)
				sb.WriteString("</li>")
				i++
			}
			sb.WriteString("</" + tag + ">")
		case ImageBlock:
			if b.Image != nil {
				sb.WriteString(`<img src="` + xhtml.EscapeString(b.Image.Src) + `"`)
				if b.Image.Width > 0 {
					sb.WriteString(` width="` + strconv.Itoa(b.Image.Width) + `"`)
				}
				if b.Image.Height > 0 {
					sb.WriteString(` height="` + strconv.Itoa(b.Image.Height) + `"`)
				}
				sb.WriteString(">")
			}
			i++
		default:
			sb.WriteString("<p" + alignAttr(b.Align) + ">")
			renderRuns(&sb, b.Runs)
			sb.WriteString("</p>")
			i++
		}
	}
	return sb.String()
}

func alignAttr(a Alignment) string {
	if a == AlignCenter {
		return ` style="text-align:center"`
	}
	return ""
}

func renderRuns(sb *strings.Builder, runs []Run) {
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		var open, closing strings.Builder
		if r.FontSize > 0 || r.Color != "" {
			open.WriteString("<font")
			if r.FontSize > 0 {
				open.WriteString(` size="` + strconv.Itoa(r.FontSize) + `"`)
			}
			if r.Color != "" {
				open.WriteString(` color="` + xhtml.EscapeString(r.Color) + `"`)
			}
			open.WriteString(">")
			closing.WriteString("</font>")
		}
		if r.Bold {
			open.WriteString("<b>")
		}
		if r.Italic {
			open.WriteString("<i>")
		}
		if r.Underline {
			open.WriteString("<u>")
		}
		sb.WriteString(open.String())
		sb.WriteString(xhtml.EscapeString(r.Text))
		if r.Underline {
			sb.WriteString("</u>")
		}
		if r.Italic {
			sb.WriteString("</i>")
		}
		if r.Bold {
			sb.WriteString("</b>")
		}
		sb.WriteString(closing.String())
	}
}

// ParseFragment reads a stored or pasted HTML fragment back into a
// document. Markup outside the editor's vocabulary contributes its text
// content; nothing is rejected, since content is treated as opaque at the
// persistence boundary.
func ParseFragment(fragment string) (*Document, error) {
	ctx := &xhtml.Node{Type: xhtml.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := xhtml.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, err
	}

	p := &fragmentParser{doc: &Document{}}
	for _, n := range nodes {
		p.walk(n, Run{}, AlignLeft, Paragraph)
	}
	p.flush()
	if len(p.doc.Blocks) == 0 {
		p.doc.Blocks = []Block{{Kind: Paragraph}}
	}
	return p.doc, nil
}

type fragmentParser struct {
	doc *Document
	cur *Block
}

func (p *fragmentParser) open(kind BlockKind, align Alignment) {
	p.flush()
	p.cur = &Block{Kind: kind, Align: align}
}

func (p *fragmentParser) flush() {
	if p.cur != nil && len(p.cur.Runs) > 0 {
		p.doc.Blocks = append(p.doc.Blocks, *p.cur)
	}
	p.cur = nil
}

func (p *fragmentParser) text(t string, f Run) {
	if strings.TrimSpace(t) == "" {
		return
	}
	if p.cur == nil {
		p.cur = &Block{Kind: Paragraph}
	}
	f.Text = t
	p.cur.Runs = append(p.cur.Runs, f)
}

func (p *fragmentParser) walk(n *xhtml.Node, f Run, align Alignment, kind BlockKind) {
	switch n.Type {
	case xhtml.TextNode:
		p.text(n.Data, f)
		return
	case xhtml.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.B, atom.Strong:
		f.Bold = true
	case atom.I, atom.Em:
		f.Italic = true
	case atom.U:
		f.Underline = true
	case atom.Font:
		if v := attr(n, "size"); v != "" {
			if size, err := strconv.Atoi(v); err == nil {
				f.FontSize = size
			}
		}
		if v := attr(n, "color"); v != "" {
			f.Color = v
		}
	case atom.P, atom.Div:
		blockAlign := parseAlign(attr(n, "style"))
		p.open(kind, blockAlign)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, f, blockAlign, kind)
		}
		p.flush()
		return
	case atom.Ol:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, f, align, OrderedItem)
		}
		return
	case atom.Ul:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, f, align, UnorderedItem)
		}
		return
	case atom.Li:
		blockAlign := parseAlign(attr(n, "style"))
		itemKind := kind
		if itemKind == Paragraph {
			itemKind = UnorderedItem
		}
		p.open(itemKind, blockAlign)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			p.walk(c, f, blockAlign, itemKind)
		}
		p.flush()
		return
	case atom.Img:
		p.flush()
		img := &Image{Src: attr(n, "src")}
		if w, err := strconv.Atoi(attr(n, "width")); err == nil {
			img.Width = w
		}
		if h, err := strconv.Atoi(attr(n, "height")); err == nil {
			img.Height = h
		}
		AttachResizer(img)
		p.doc.Blocks = append(p.doc.Blocks, Block{Kind: ImageBlock, Image: img})
		return
	case atom.Br:
		p.flush()
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walk(c, f, align, kind)
	}
}

func attr(n *xhtml.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func parseAlign(style string) Alignment {
	compact := strings.ReplaceAll(style, " ", "")
	if strings.Contains(compact, "text-align:center") {
		return AlignCenter
	}
	return AlignLeft
}
