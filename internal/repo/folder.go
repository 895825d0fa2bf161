package repo

import (
	"context"

	"vaultbox/internal/model"

	"gorm.io/gorm"
)

// FolderRepository — доступ к папкам документов.
type FolderRepository interface {
	Create(ctx context.Context, folder *model.DocumentFolder) (*model.DocumentFolder, error)
	ListByUser(ctx context.Context, userID uint) ([]model.DocumentFolder, error)

	// DeleteCascade удаляет папку и её документы одной транзакцией и
	// возвращает ключи объектов удалённых документов.
	DeleteCascade(ctx context.Context, userID, id uint) ([]string, error)
}

type folderRepo struct {
	db *gorm.DB
}

// NewFolderRepository создаёт реализацию репозитория папок.
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepo{db: db}
}

func (r *folderRepo) Create(ctx context.Context, folder *model.DocumentFolder) (*model.DocumentFolder, error) {
	if err := r.db.WithContext(ctx).Create(folder).Error; err != nil {
		return nil, err
	}
	return folder, nil
}

func (r *folderRepo) ListByUser(ctx context.Context, userID uint) ([]model.DocumentFolder, error) {
	var folders []model.DocumentFolder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepo) DeleteCascade(ctx context.Context, userID, id uint) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var folder model.DocumentFolder
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&folder).Error; err != nil {
			return err
		}
		var docs []model.Document
		if err := tx.Where("folder_id = ? AND user_id = ?", id, userID).Find(&docs).Error; err != nil {
			return err
		}
		for _, d := range docs {
			keys = append(keys, d.FilePath)
		}
		if err := tx.Where("folder_id = ? AND user_id = ?", id, userID).Delete(&model.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&folder).Error
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
