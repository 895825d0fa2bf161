package model

import "time"

// User — учётная запись владельца хранилища. Email уникален, пароль хранится
// только в виде bcrypt-хеша.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	PhoneNumber    *string `json:"phone_number,omitempty"`
	DOB            *string `gorm:"column:dob" json:"dob,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
