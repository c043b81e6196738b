package models

import (
	"encoding/json"
	"time"
)

type Folder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Notes     []Note    `gorm:"foreignKey:FolderID" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (f *Folder) FromJSON(data []byte) error {
	return json.Unmarshal(data, f)
}

func (f *Folder) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}
