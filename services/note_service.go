package services

import (
	"errors"
	"strings"
	"time"

	"gg-note/ggnote/broker"
	"gg-note/ggnote/database"
	"gg-note/ggnote/models"

	"gorm.io/gorm"
)

// NoteInput carries optional fields for create and partial update. A nil
// pointer means "leave unchanged" on update and "not provided" on create.
type NoteInput struct {
	Title    *string
	Content  *string
	FolderID *uint
}

type NoteServiceInterface interface {
	GetNotes(db *database.Database, folderID *uint) ([]models.NotePreview, error)
	GetNoteById(db *database.Database, id uint) (models.Note, error)
	CreateNote(db *database.Database, input NoteInput) (models.Note, error)
	UpdateNote(db *database.Database, id uint, input NoteInput) (models.Note, error)
	DeleteNote(db *database.Database, id uint) error
}

type NoteService struct{}

// GetNotes returns listing previews, most recently updated first. The
// ordering is deliberately the same with and without a folder filter.
func (s *NoteService) GetNotes(db *database.Database, folderID *uint) ([]models.NotePreview, error) {
	previews := []models.NotePreview{}
	query := db.DB.Model(&models.Note{}).
		Select("id", "title", "updated_at").
		Order("updated_at DESC")
	if folderID != nil {
		query = query.Where("folder_id = ?", *folderID)
	}
	if err := query.Scan(&previews).Error; err != nil {
		return nil, err
	}
	return previews, nil
}

func (s *NoteService) GetNoteById(db *database.Database, id uint) (models.Note, error) {
	var note models.Note
	if err := db.DB.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}
	return note, nil
}

func (s *NoteService) CreateNote(db *database.Database, input NoteInput) (models.Note, error) {
	title := ""
	if input.Title != nil {
		title = strings.TrimSpace(*input.Title)
	}
	content := ""
	if input.Content != nil {
		content = *input.Content
	}

	if title == "" && strings.TrimSpace(content) == "" {
		return models.Note{}, ErrValidation
	}
	if title == "" {
		title = models.DefaultNoteTitle
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	if input.FolderID != nil {
		var folderCount int64
		if err := tx.Model(&models.Folder{}).Where("id = ?", *input.FolderID).
			Count(&folderCount).Error; err != nil {
			tx.Rollback()
			return models.Note{}, err
		}
		if folderCount == 0 {
			tx.Rollback()
			return models.Note{}, ErrFolderNotFound
		}
	}

	note := models.Note{
		Title:    title,
		Content:  content,
		FolderID: input.FolderID,
	}

	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	event, err := models.NewEvent(broker.NoteCreated, "note", "create", map[string]interface{}{
		"note_id": note.ID,
		"title":   note.Title,
	})
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote applies a partial update: omitted fields keep their stored
// values, and updated_at always advances past its previous value.
func (s *NoteService) UpdateNote(db *database.Database, id uint, input NoteInput) (models.Note, error) {
	if input.Title == nil && input.Content == nil {
		return models.Note{}, ErrValidation
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	var note models.Note
	if err := tx.First(&note, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}

	now := time.Now().UTC()
	if !now.After(note.UpdatedAt) {
		now = note.UpdatedAt.Add(time.Millisecond)
	}
	updates["updated_at"] = now

	if err := tx.Model(&note).Updates(updates).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = now

	event, err := models.NewEvent(broker.NoteUpdated, "note", "update", map[string]interface{}{
		"note_id": note.ID,
		"title":   note.Title,
	})
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) DeleteNote(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var note models.Note
	if err := tx.First(&note, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	if err := tx.Delete(&note).Error; err != nil {
		tx.Rollback()
		return err
	}

	event, err := models.NewEvent(broker.NoteDeleted, "note", "delete", map[string]interface{}{
		"note_id": note.ID,
	})
	if err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

var NoteServiceInstance NoteServiceInterface = &NoteService{}
