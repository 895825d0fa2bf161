package service

import (
	"errors"

	"gorm.io/gorm"
)

// Ошибки сервисного слоя. Хендлеры маппят их в HTTP-статусы; всё остальное
// схлопывается в internal error без деталей.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// mapNotFound нормализует ошибку репозитория: несуществующая или чужая
// запись выглядят одинаково.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
