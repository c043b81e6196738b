package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParagraphWithInlineStyles(t *testing.T) {
	s := newSessionWithText(t, "plain bold")
	s.Select(6, 10)
	s.Execute(CmdBold, "")

	assert.Equal(t, "<p>plain <b>bold</b></p>", s.HTML())
}

func TestRenderFontWrapsInlineTags(t *testing.T) {
	s := newSessionWithText(t, "red")
	s.SelectAll()
	s.Execute(CmdForeColor, "#ff0000")
	s.Execute(CmdFontSize, "5")
	s.Execute(CmdBold, "")

	assert.Equal(t, `<p><font size="5" color="#ff0000"><b>red</b></font></p>`, s.HTML())
}

func TestRenderGroupsConsecutiveListItems(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Kind: OrderedItem, Runs: []Run{{Text: "one"}}},
		{Kind: OrderedItem, Runs: []Run{{Text: "two"}}},
		{Kind: Paragraph, Runs: []Run{{Text: "after"}}},
		{Kind: UnorderedItem, Runs: []Run{{Text: "dash"}}},
	}}

	assert.Equal(t,
		"<ol><li>one</li><li>two</li></ol><p>after</p><ul><li>dash</li></ul>",
		RenderHTML(doc))
}

func TestRenderCenterAlignment(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Kind: Paragraph, Align: AlignCenter, Runs: []Run{{Text: "mid"}}},
	}}
	assert.Equal(t, `<p style="text-align:center">mid</p>`, RenderHTML(doc))
}

func TestRenderImageDimensions(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Kind: ImageBlock, Image: &Image{Src: "/uploads/a.png", Width: 120, Height: 65}},
	}}
	assert.Equal(t, `<img src="/uploads/a.png" width="120" height="65">`, RenderHTML(doc))
}

func TestRenderEscapesText(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Kind: Paragraph, Runs: []Run{{Text: `<script>&"`}}},
	}}
	assert.Equal(t, "<p>&lt;script&gt;&amp;&#34;</p>", RenderHTML(doc))
}

func TestParseFragmentRoundTrip(t *testing.T) {
	fragment := `<p>plain <b>bold</b></p><ol><li>one</li><li>two</li></ol>` +
		`<p style="text-align:center"><font size="5" color="#ff0000"><i>big</i></font></p>` +
		`<img src="/uploads/a.png" width="120" height="65">`

	doc, err := ParseFragment(fragment)
	require.NoError(t, err)
	assert.Equal(t, fragment, RenderHTML(doc))
}

func TestParseFragmentStrongAndEm(t *testing.T) {
	doc, err := ParseFragment("<p><strong>a</strong><em>b</em></p>")
	require.NoError(t, err)

	runs := doc.Blocks[0].Runs
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Bold)
	assert.True(t, runs[1].Italic)
}

func TestParseFragmentUnknownTagsKeepText(t *testing.T) {
	doc, err := ParseFragment(`<section><span class="x">kept</span></section>`)
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "kept", doc.Blocks[0].Runs[0].Text)
}

func TestParseFragmentAttachesResizers(t *testing.T) {
	doc, err := ParseFragment(`<img src="/uploads/a.png" width="10" height="10">`)
	require.NoError(t, err)

	require.Len(t, doc.Blocks, 1)
	img := doc.Blocks[0].Image
	require.NotNil(t, img)
	r := AttachResizer(img)
	r.Press(0, 0)
	r.Move(5, 5)
	assert.Equal(t, 15, img.Width)
}

func TestParseEmptyFragment(t *testing.T) {
	doc, err := ParseFragment("")
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Empty(t, doc.Blocks[0].Runs)
}
