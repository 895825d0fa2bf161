package model

import "time"

// Album — контейнер изображений пользователя.
type Album struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name string `gorm:"not null" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
