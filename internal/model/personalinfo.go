package model

import "time"

// PersonalInfoItem — произвольный файл персональной информации.
type PersonalInfoItem struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	FilePath string `gorm:"not null" json:"file_path"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName сохраняет имя таблицы исходной схемы.
func (PersonalInfoItem) TableName() string { return "personal_information" }
