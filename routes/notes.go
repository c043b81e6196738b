package routes

import (
	"errors"
	"net/http"
	"strconv"

	"gg-note/ggnote/database"
	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
)

// noteRequest uses pointers so a missing field is distinguishable from an
// explicitly empty one; updates only touch provided fields.
type noteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	FolderID *uint   `json:"folder_id"`
}

func RegisterNoteRoutes(router *gin.Engine, db *database.Database, noteService services.NoteServiceInterface) {
	group := router.Group("/api/v1/notes")
	{
		group.GET("", func(c *gin.Context) { GetNotes(c, db, noteService) })
		group.POST("", func(c *gin.Context) { CreateNote(c, db, noteService) })
		group.GET("/:id", func(c *gin.Context) { GetNoteById(c, db, noteService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateNote(c, db, noteService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteNote(c, db, noteService) })
	}
}

func GetNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	var folderID *uint
	if raw := c.Query("folder_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
			return
		}
		id := uint(parsed)
		folderID = &id
	}

	notes, err := noteService.GetNotes(db, folderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	var body noteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	note, err := noteService.CreateNote(db, services.NoteInput{
		Title:    body.Title,
		Content:  body.Content,
		FolderID: body.FolderID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title or content must not be empty"})
		case errors.Is(err, services.ErrFolderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
		}
		return
	}
	c.JSON(http.StatusCreated, note)
}

func GetNoteById(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	note, err := noteService.GetNoteById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

func UpdateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	var body noteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	note, err := noteService.UpdateNote(db, id, services.NoteInput{
		Title:   body.Title,
		Content: body.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title or content must be provided"})
		case errors.Is(err, services.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		}
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	id, ok := noteIDParam(c)
	if !ok {
		return
	}

	if err := noteService.DeleteNote(db, id); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func noteIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
		return 0, false
	}
	return uint(id), true
}
