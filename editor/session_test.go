package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSessionRestoresStoredFragment(t *testing.T) {
	s, err := LoadSession("<p>hello <b>world</b></p>")
	require.NoError(t, err)

	assert.Equal(t, "hello world", s.PlainText())
	assert.Equal(t, "<p>hello <b>world</b></p>", s.HTML())
}

func TestLoadSessionEmptyContent(t *testing.T) {
	s, err := LoadSession("")
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
}

func TestInsertTextInheritsFormatting(t *testing.T) {
	s := newSessionWithText(t, "bold")
	s.SelectAll()
	s.Execute(CmdBold, "")

	s.Select(4, 4)
	s.InsertText("er")
	assert.Equal(t, "<p><b>bolder</b></p>", s.HTML())
}

func TestInsertImageAttachesResizer(t *testing.T) {
	s := newSessionWithText(t, "text")
	img := s.InsertImage("/uploads/pic.png", 100, 50)

	require.Len(t, s.Images(), 1)
	assert.Same(t, img, s.Images()[0])

	r := AttachResizer(img)
	r.Press(10, 10)
	r.Move(30, 25)
	assert.Equal(t, 120, img.Width)
	assert.Equal(t, 65, img.Height)

	assert.Contains(t, s.HTML(), `<img src="/uploads/pic.png" width="120" height="65">`)
}

func TestPasteSplicesAfterCaretBlock(t *testing.T) {
	s, err := LoadSession("<p>first</p><p>last</p>")
	require.NoError(t, err)

	s.Select(2, 2)
	require.NoError(t, s.PasteHTML("<p>pasted</p>"))
	assert.Equal(t, "<p>first</p><p>pasted</p><p>last</p>", s.HTML())
}

func TestPasteImageGainsResizer(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.PasteHTML(`<img src="/uploads/a.png" width="10" height="10">`))

	imgs := s.Images()
	require.Len(t, imgs, 1)
	r := AttachResizer(imgs[0])
	r.Press(0, 0)
	r.Move(7, 3)
	assert.Equal(t, 17, imgs[0].Width)
	assert.Equal(t, 13, imgs[0].Height)
}

func TestPasteIgnoredWithoutFocus(t *testing.T) {
	s := newSessionWithText(t, "keep")
	s.Blur()
	require.NoError(t, s.PasteHTML("<p>dropped</p>"))
	assert.Equal(t, "<p>keep</p>", s.HTML())
}

func TestPasteEmptyFragmentIsNoOp(t *testing.T) {
	s := newSessionWithText(t, "keep")
	before := s.HTML()
	require.NoError(t, s.PasteHTML("  "))
	assert.Equal(t, before, s.HTML())
	assert.False(t, s.FormatState().CanRedo)
}

func TestPasteIsUndoable(t *testing.T) {
	s := newSessionWithText(t, "keep")
	require.NoError(t, s.PasteHTML("<p>pasted</p>"))
	assert.Contains(t, s.HTML(), "pasted")

	s.Execute(CmdUndo, "")
	assert.Equal(t, "<p>keep</p>", s.HTML())
}

func TestIsEmpty(t *testing.T) {
	s := NewSession()
	assert.True(t, s.IsEmpty())

	s.InsertText("   ")
	assert.True(t, s.IsEmpty())

	s.InsertText("x")
	assert.False(t, s.IsEmpty())

	imgOnly := NewSession()
	imgOnly.InsertImage("/uploads/a.png", 1, 1)
	assert.False(t, imgOnly.IsEmpty())
}

func TestSelectClampsToDocument(t *testing.T) {
	s := newSessionWithText(t, "abc")
	s.Select(-5, 50)
	assert.Equal(t, Selection{Start: 0, End: 3}, s.Selection())

	s.Select(2, 1)
	assert.Equal(t, Selection{Start: 1, End: 2}, s.Selection())
}
