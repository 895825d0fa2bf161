package repo

import (
	"vaultbox/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с PostgreSQL и прогоняет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate выполняет AutoMigrate для всех моделей. Вынесено отдельно,
// чтобы тесты могли мигрировать in-memory SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Card{},
		&model.Album{},
		&model.Image{},
		&model.DocumentFolder{},
		&model.Document{},
		&model.PersonalInfoItem{},
	)
}
