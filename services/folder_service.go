package services

import (
	"errors"
	"strings"

	"gg-note/ggnote/broker"
	"gg-note/ggnote/database"
	"gg-note/ggnote/models"

	"gorm.io/gorm"
)

type FolderServiceInterface interface {
	GetFolders(db *database.Database) ([]models.Folder, error)
	CreateFolder(db *database.Database, name string) (models.Folder, error)
	DeleteFolder(db *database.Database, id uint) error
}

type FolderService struct{}

// GetFolders lists every folder, newest first by id, matching the order
// the sidebar has always shown.
func (s *FolderService) GetFolders(db *database.Database) ([]models.Folder, error) {
	var folders []models.Folder
	if err := db.DB.Order("id DESC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (s *FolderService) CreateFolder(db *database.Database, name string) (models.Folder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, ErrValidation
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Folder{}, tx.Error
	}

	folder := models.Folder{Name: name}
	if err := tx.Create(&folder).Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	event, err := models.NewEvent(broker.FolderCreated, "folder", "create", map[string]interface{}{
		"folder_id": folder.ID,
		"name":      folder.Name,
	})
	if err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}
	if err := tx.Create(event).Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Folder{}, err
	}

	return folder, nil
}

// DeleteFolder removes the folder and detaches its notes. The detach and
// the delete run in one transaction so a crash cannot leave notes pointing
// at a folder that no longer exists.
func (s *FolderService) DeleteFolder(db *database.Database, id uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var folder models.Folder
	if err := tx.First(&folder, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFolderNotFound
		}
		return err
	}

	// UpdateColumn keeps updated_at untouched: detaching is not an edit.
	if err := tx.Model(&models.Note{}).Where("folder_id = ?", id).
		UpdateColumn("folder_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(&folder).Error; err != nil {
		tx.Rollback()
		return err
	}

	event, err := models.NewEvent(broker.FolderDeleted, "folder", "delete", map[string]interface{}{
		"folder_id": folder.ID,
		"name":      folder.Name,
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

var FolderServiceInstance FolderServiceInterface = &FolderService{}
