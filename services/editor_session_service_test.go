package services

import (
	"testing"

	"gg-note/ggnote/database"
	"gg-note/ggnote/models"
	"gg-note/ggnote/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingNoteService wraps the real service and fails writes on demand.
type failingNoteService struct {
	NoteService
	fail bool
}

func (f *failingNoteService) CreateNote(db *database.Database, input NoteInput) (models.Note, error) {
	if f.fail {
		return models.Note{}, ErrInternal
	}
	return f.NoteService.CreateNote(db, input)
}

func (f *failingNoteService) UpdateNote(db *database.Database, id uint, input NoteInput) (models.Note, error) {
	if f.fail {
		return models.Note{}, ErrInternal
	}
	return f.NoteService.UpdateNote(db, id, input)
}

func TestCommitEmptyBufferPersistsNothing(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	closed := false
	session, err := service.Open(db, nil, nil, func() { closed = true })
	require.NoError(t, err)

	session.SetTitle("   ")
	require.NoError(t, service.Commit(db, session))

	assert.Equal(t, SessionClosed, session.State())
	assert.True(t, closed)

	var count int64
	require.NoError(t, db.DB.Model(&models.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommitCreatesNote(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	session, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	session.SetTitle("Shopping")
	session.Editor().InsertText("milk")
	require.NoError(t, service.Commit(db, session))

	require.NotNil(t, session.NoteID())
	note, err := (&NoteService{}).GetNoteById(db, *session.NoteID())
	require.NoError(t, err)
	assert.Equal(t, "Shopping", note.Title)
	assert.Equal(t, "<p>milk</p>", note.Content)
}

func TestCommitTitleOnlyStoresEmptyContent(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	session, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	session.SetTitle("Just a title")
	require.NoError(t, service.Commit(db, session))

	require.NotNil(t, session.NoteID())
	note, err := (&NoteService{}).GetNoteById(db, *session.NoteID())
	require.NoError(t, err)
	assert.Equal(t, "", note.Content)
}

func TestOpenExistingNoteLoadsBuffer(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	noteService := &NoteService{}
	note, err := noteService.CreateNote(db, NoteInput{
		Title:   strPtr("Draft"),
		Content: strPtr("<p>hello <b>world</b></p>"),
	})
	require.NoError(t, err)

	service := NewEditorSessionService(noteService)
	session, err := service.Open(db, &note.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Draft", session.Title())
	assert.Equal(t, "hello world", session.Editor().PlainText())

	session.Editor().InsertText("!")
	require.NoError(t, service.Commit(db, session))

	saved, err := noteService.GetNoteById(db, note.ID)
	require.NoError(t, err)
	assert.Contains(t, saved.Content, "!")
}

func TestOpenMissingNote(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	missing := uint(9999)
	_, err := service.Open(db, &missing, nil, nil)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestFailedCommitKeepsBufferEditable(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	notes := &failingNoteService{fail: true}
	service := NewEditorSessionService(notes)
	session, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	session.SetTitle("Keep me")
	session.Editor().InsertText("unsaved text")

	require.Error(t, service.Commit(db, session))
	assert.Equal(t, SessionEditing, session.State())
	assert.Equal(t, "unsaved text", session.Editor().PlainText())

	// The retry succeeds once the store recovers.
	notes.fail = false
	require.NoError(t, service.Commit(db, session))
	assert.Equal(t, SessionClosed, session.State())
	require.NotNil(t, session.NoteID())
}

func TestCommitOnClosedSessionIsNoOp(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	session, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	session.SetTitle("once")
	require.NoError(t, service.Commit(db, session))
	require.NoError(t, service.Commit(db, session))

	var count int64
	require.NoError(t, db.DB.Model(&models.Note{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOpenFlushesPreviousSession(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	first, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)
	first.SetTitle("First")

	second, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	// The earlier buffer was committed, not dropped.
	assert.Equal(t, SessionClosed, first.State())
	assert.Equal(t, SessionEditing, second.State())

	previews, err := (&NoteService{}).GetNotes(db, nil)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, "First", previews[0].Title)
}

func TestDiscardPersistsNothing(t *testing.T) {
	db, cleanup := testutils.SetupTestDB()
	defer cleanup()

	service := NewEditorSessionService(&NoteService{})
	session, err := service.Open(db, nil, nil, nil)
	require.NoError(t, err)

	session.SetTitle("Never saved")
	session.Editor().InsertText("scratch")
	service.Discard(session)

	assert.Equal(t, SessionClosed, session.State())

	var count int64
	require.NoError(t, db.DB.Model(&models.Note{}).Count(&count).Error)
	assert.Zero(t, count)
}
