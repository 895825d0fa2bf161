package model

import "time"

// Document — файл в объектном хранилище, опционально внутри папки.
type Document struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	FilePath string `gorm:"not null" json:"file_path"`

	FolderID *uint           `gorm:"index" json:"folder_id,omitempty"`
	Folder   *DocumentFolder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
