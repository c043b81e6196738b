package database

import (
	"log"

	"gg-note/ggnote/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Folder{},
		&models.Note{},
		&models.Event{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}

// SeedDefaultFolder creates the "Default" folder on first run so new
// installations always have somewhere to file notes.
func SeedDefaultFolder(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Folder{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("No folders found, creating default folder")
	return db.Create(&models.Folder{Name: "Default"}).Error
}
