package services

import (
	"log"
	"strings"
	"sync"

	"gg-note/ggnote/database"
	"gg-note/ggnote/editor"
)

// SessionState is the lifecycle of one editing session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionEditing
	SessionCommitting
	SessionClosed
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionEditing:
		return "editing"
	case SessionCommitting:
		return "committing"
	case SessionClosed:
		return "closed"
	}
	return "unknown"
}

// EditorSession holds one note's transient edit buffer: the title field and
// the rich-text editor session. It is created by Open and driven to Closed
// by Commit or Discard.
type EditorSession struct {
	mu       sync.Mutex
	state    SessionState
	noteID   *uint
	folderID *uint
	title    string
	editor   *editor.Session
	onClose  func()
}

// Editor exposes the rich-text session for toolbar and input wiring.
func (s *EditorSession) Editor() *editor.Session { return s.editor }

// State returns the session's lifecycle state.
func (s *EditorSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NoteID returns the persisted note id, set once the first commit succeeds.
func (s *EditorSession) NoteID() *uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noteID
}

// SetTitle replaces the title buffer.
func (s *EditorSession) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Title returns the title buffer.
func (s *EditorSession) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

type EditorSessionServiceInterface interface {
	Open(db *database.Database, noteID *uint, folderID *uint, onClose func()) (*EditorSession, error)
	Commit(db *database.Database, session *EditorSession) error
	Discard(session *EditorSession)
}

// EditorSessionService owns at most one live editing session and decides
// when its buffer is persisted or dropped.
type EditorSessionService struct {
	mu          sync.Mutex
	noteService NoteServiceInterface
	current     *EditorSession
}

func NewEditorSessionService(noteService NoteServiceInterface) *EditorSessionService {
	return &EditorSessionService{noteService: noteService}
}

// Open starts an editing session. Editing an existing note loads its title
// and content; creating starts empty. A still-open previous session is
// flushed through the normal commit path first, so at most one edit buffer
// is ever live.
func (s *EditorSessionService) Open(db *database.Database, noteID *uint, folderID *uint, onClose func()) (*EditorSession, error) {
	s.mu.Lock()
	previous := s.current
	s.mu.Unlock()

	if previous != nil && previous.State() == SessionEditing {
		if err := s.Commit(db, previous); err != nil {
			log.Printf("Failed to flush previous editing session: %v", err)
		}
	}

	session := &EditorSession{
		state:    SessionEditing,
		noteID:   noteID,
		folderID: folderID,
		onClose:  onClose,
	}

	if noteID != nil {
		note, err := s.noteService.GetNoteById(db, *noteID)
		if err != nil {
			return nil, err
		}
		ed, err := editor.LoadSession(note.Content)
		if err != nil {
			return nil, err
		}
		session.title = note.Title
		session.editor = ed
		session.folderID = note.FolderID
	} else {
		session.editor = editor.NewSession()
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, nil
}

// Commit persists the session's buffer and closes the session. An empty
// buffer (title and content both blank after trimming) is discarded without
// touching storage. A failed save returns the session to Editing with the
// buffer intact; nothing the user typed is lost. A commit already in flight
// suppresses this one.
func (s *EditorSessionService) Commit(db *database.Database, session *EditorSession) error {
	session.mu.Lock()
	switch session.state {
	case SessionCommitting:
		session.mu.Unlock()
		return nil
	case SessionEditing:
	default:
		session.mu.Unlock()
		return nil
	}
	session.state = SessionCommitting
	title := strings.TrimSpace(session.title)
	noteID := session.noteID
	folderID := session.folderID
	content := ""
	if !session.editor.IsEmpty() {
		content = session.editor.HTML()
	}
	empty := title == "" && content == ""
	session.mu.Unlock()

	if empty {
		s.close(session)
		return nil
	}

	var err error
	if noteID == nil {
		var created uint
		created, err = s.createNote(db, title, content, folderID)
		if err == nil {
			session.mu.Lock()
			session.noteID = &created
			session.mu.Unlock()
		}
	} else {
		_, err = s.noteService.UpdateNote(db, *noteID, NoteInput{
			Title:   &title,
			Content: &content,
		})
	}

	if err != nil {
		log.Printf("Failed to commit editing session: %v", err)
		session.mu.Lock()
		session.state = SessionEditing
		session.mu.Unlock()
		return err
	}

	s.close(session)
	return nil
}

// Discard closes the session without persisting anything.
func (s *EditorSessionService) Discard(session *EditorSession) {
	session.mu.Lock()
	if session.state != SessionEditing {
		session.mu.Unlock()
		return
	}
	session.state = SessionClosed
	session.mu.Unlock()
	s.finish(session)
}

func (s *EditorSessionService) createNote(db *database.Database, title, content string, folderID *uint) (uint, error) {
	input := NoteInput{FolderID: folderID}
	if title != "" {
		input.Title = &title
	}
	if content != "" {
		input.Content = &content
	}
	note, err := s.noteService.CreateNote(db, input)
	if err != nil {
		return 0, err
	}
	return note.ID, nil
}

func (s *EditorSessionService) close(session *EditorSession) {
	session.mu.Lock()
	session.state = SessionClosed
	onClose := session.onClose
	session.mu.Unlock()

	s.finish(session)
	if onClose != nil {
		onClose()
	}
}

func (s *EditorSessionService) finish(session *EditorSession) {
	s.mu.Lock()
	if s.current == session {
		s.current = nil
	}
	s.mu.Unlock()
}

var EditorSessionServiceInstance EditorSessionServiceInterface
