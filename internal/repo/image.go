package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// ImageRepository — доступ к изображениям.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) (*model.Image, error)

	// ListByUser возвращает изображения пользователя, опционально внутри
	// одного альбома.
	ListByUser(ctx context.Context, userID uint, albumID *uint) ([]model.Image, error)
	GetByID(ctx context.Context, userID, id uint) (*model.Image, error)
	Delete(ctx context.Context, userID, id uint) error
}

type imageRepo struct {
	db *gorm.DB
}

// NewImageRepository создаёт реализацию репозитория изображений.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Create(ctx context.Context, image *model.Image) (*model.Image, error) {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

func (r *imageRepo) ListByUser(ctx context.Context, userID uint, albumID *uint) ([]model.Image, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if albumID != nil {
		q = q.Where("album_id = ?", *albumID)
	}
	var images []model.Image
	if err := q.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *imageRepo) GetByID(ctx context.Context, userID, id uint) (*model.Image, error) {
	var img model.Image
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepo) Delete(ctx context.Context, userID, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Image{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
