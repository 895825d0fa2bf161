package service

import (
	"context"

	"vaultbox/internal/model"
	"vaultbox/internal/repo"
	"vaultbox/internal/storage"

	"go.uber.org/zap"
)

// FolderService — папки документов.
type FolderService struct {
	repo   repo.FolderRepository
	store  storage.ObjectStorage
	logger *zap.SugaredLogger
}

// NewFolderService создаёт сервис папок.
func NewFolderService(r repo.FolderRepository, store storage.ObjectStorage, logger *zap.SugaredLogger) *FolderService {
	return &FolderService{repo: r, store: store, logger: logger}
}

// List возвращает папки владельца.
func (s *FolderService) List(ctx context.Context, userID uint) ([]model.DocumentFolder, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create создаёт папку.
func (s *FolderService) Create(ctx context.Context, userID uint, name string) (*model.DocumentFolder, error) {
	return s.repo.Create(ctx, &model.DocumentFolder{UserID: userID, Name: name})
}

// Delete каскадно удаляет папку вместе с документами.
func (s *FolderService) Delete(ctx context.Context, userID, id uint) error {
	keys, err := s.repo.DeleteCascade(ctx, userID, id)
	if err != nil {
		return mapNotFound(err)
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Errorw("failed to delete folder object", "key", key, "error", err)
		}
	}
	return nil
}
