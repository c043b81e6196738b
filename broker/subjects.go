package broker

// Subjects follow the event-name convention <entity>.<action>.
// Consumers subscribe with wildcards.
const (
	FolderCreated = "folder.created"
	FolderDeleted = "folder.deleted"

	NoteCreated = "note.created"
	NoteUpdated = "note.updated"
	NoteDeleted = "note.deleted"

	FolderSubject = "folder.>"
	NoteSubject   = "note.>"
)
