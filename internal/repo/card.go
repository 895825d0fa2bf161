package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// CardRepository — доступ к картам. Каждый запрос фильтруется по владельцу:
// чужая карта неотличима от несуществующей (gorm.ErrRecordNotFound).
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) (*model.Card, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Card, error)
	GetByID(ctx context.Context, userID, id uint) (*model.Card, error)
	Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.Card, error)
	Delete(ctx context.Context, userID, id uint) error
}

type cardRepo struct {
	db *gorm.DB
}

// NewCardRepository создаёт реализацию репозитория карт.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepo{db: db}
}

func (r *cardRepo) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *cardRepo) ListByUser(ctx context.Context, userID uint) ([]model.Card, error) {
	var cards []model.Card
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *cardRepo) GetByID(ctx context.Context, userID, id uint) (*model.Card, error) {
	var c model.Card
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepo) Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.Card, error) {
	tx := r.db.WithContext(ctx).Model(&model.Card{}).
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

func (r *cardRepo) Delete(ctx context.Context, userID, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Card{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
