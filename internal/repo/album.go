package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// AlbumRepository — доступ к альбомам и каскадное удаление их содержимого.
type AlbumRepository interface {
	Create(ctx context.Context, album *model.Album) (*model.Album, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Album, error)

	// DeleteCascade проверяет владение альбомом, удаляет альбом вместе с
	// изображениями одной транзакцией и возвращает ключи объектов удалённых
	// изображений для очистки хранилища.
	DeleteCascade(ctx context.Context, userID, id uint) ([]string, error)
}

type albumRepo struct {
	db *gorm.DB
}

// NewAlbumRepository создаёт реализацию репозитория альбомов.
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepo{db: db}
}

func (r *albumRepo) Create(ctx context.Context, album *model.Album) (*model.Album, error) {
	if err := r.db.WithContext(ctx).Create(album).Error; err != nil {
		return nil, err
	}
	return album, nil
}

func (r *albumRepo) ListByUser(ctx context.Context, userID uint) ([]model.Album, error) {
	var albums []model.Album
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

func (r *albumRepo) DeleteCascade(ctx context.Context, userID, id uint) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var album model.Album
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&album).Error; err != nil {
			return err
		}
		var images []model.Image
		if err := tx.Where("album_id = ? AND user_id = ?", id, userID).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			keys = append(keys, img.FilePath)
		}
		if err := tx.Where("album_id = ? AND user_id = ?", id, userID).Delete(&model.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&album).Error
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
