package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// DocumentRepository — доступ к документам.
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
	ListByUser(ctx context.Context, userID uint, folderID *uint) ([]model.Document, error)
	GetByID(ctx context.Context, userID, id uint) (*model.Document, error)
	Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.Document, error)
	Delete(ctx context.Context, userID, id uint) error

	// DeleteBatch удаляет перечисленные документы пользователя и возвращает
	// ключи их объектов. Чужие id просто не попадают в выборку.
	DeleteBatch(ctx context.Context, userID uint, ids []uint) ([]string, error)
}

type documentRepo struct {
	db *gorm.DB
}

// NewDocumentRepository создаёт реализацию репозитория документов.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo) ListByUser(ctx context.Context, userID uint, folderID *uint) ([]model.Document, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if folderID != nil {
		q = q.Where("folder_id = ?", *folderID)
	}
	var docs []model.Document
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepo) GetByID(ctx context.Context, userID, id uint) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.Document, error) {
	tx := r.db.WithContext(ctx).Model(&model.Document{}).
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

func (r *documentRepo) Delete(ctx context.Context, userID, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Document{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *documentRepo) DeleteBatch(ctx context.Context, userID uint, ids []uint) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docs []model.Document
		if err := tx.Where("id IN ? AND user_id = ?", ids, userID).Find(&docs).Error; err != nil {
			return err
		}
		for _, d := range docs {
			keys = append(keys, d.FilePath)
		}
		return tx.Where("id IN ? AND user_id = ?", ids, userID).Delete(&model.Document{}).Error
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
