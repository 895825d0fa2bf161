package service

import (
	"context"

	"vaultbox/internal/model"
	"vaultbox/internal/repo"
	"vaultbox/internal/storage"

	"go.uber.org/zap"
)

// AlbumService — альбомы изображений.
type AlbumService struct {
	repo   repo.AlbumRepository
	store  storage.ObjectStorage
	logger *zap.SugaredLogger
}

// NewAlbumService создаёт сервис альбомов.
func NewAlbumService(r repo.AlbumRepository, store storage.ObjectStorage, logger *zap.SugaredLogger) *AlbumService {
	return &AlbumService{repo: r, store: store, logger: logger}
}

// List возвращает альбомы владельца.
func (s *AlbumService) List(ctx context.Context, userID uint) ([]model.Album, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create создаёт альбом.
func (s *AlbumService) Create(ctx context.Context, userID uint, name string) (*model.Album, error) {
	return s.repo.Create(ctx, &model.Album{UserID: userID, Name: name})
}

// Delete каскадно удаляет альбом: владение проверяется на контейнере,
// строки удаляются транзакцией, объекты — best-effort после.
func (s *AlbumService) Delete(ctx context.Context, userID, id uint) error {
	keys, err := s.repo.DeleteCascade(ctx, userID, id)
	if err != nil {
		return mapNotFound(err)
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Errorw("failed to delete album object", "key", key, "error", err)
		}
	}
	return nil
}
