package model

import "time"

// Image — изображение в объектном хранилище. FilePath — относительный ключ
// объекта ("images/<uuid>_<имя>"), публичный URL собирается на выдаче.
type Image struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	FilePath string `gorm:"not null" json:"file_path"`

	AlbumID *uint  `gorm:"index" json:"album_id,omitempty"`
	Album   *Album `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
