package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// PersonalInfoRepository — доступ к файлам персональной информации.
type PersonalInfoRepository interface {
	Create(ctx context.Context, item *model.PersonalInfoItem) (*model.PersonalInfoItem, error)
	ListByUser(ctx context.Context, userID uint) ([]model.PersonalInfoItem, error)
	GetByID(ctx context.Context, userID, id uint) (*model.PersonalInfoItem, error)
	Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.PersonalInfoItem, error)
	Delete(ctx context.Context, userID, id uint) error
}

type personalInfoRepo struct {
	db *gorm.DB
}

// NewPersonalInfoRepository создаёт реализацию репозитория персональной информации.
func NewPersonalInfoRepository(db *gorm.DB) PersonalInfoRepository {
	return &personalInfoRepo{db: db}
}

func (r *personalInfoRepo) Create(ctx context.Context, item *model.PersonalInfoItem) (*model.PersonalInfoItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *personalInfoRepo) ListByUser(ctx context.Context, userID uint) ([]model.PersonalInfoItem, error) {
	var items []model.PersonalInfoItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *personalInfoRepo) GetByID(ctx context.Context, userID, id uint) (*model.PersonalInfoItem, error) {
	var it model.PersonalInfoItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *personalInfoRepo) Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.PersonalInfoItem, error) {
	tx := r.db.WithContext(ctx).Model(&model.PersonalInfoItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, userID, id)
}

func (r *personalInfoRepo) Delete(ctx context.Context, userID, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PersonalInfoItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
