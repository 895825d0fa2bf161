package service

import (
	"context"
	"mime/multipart"

	"vaultbox/internal/model"
	"vaultbox/internal/repo"
	"vaultbox/internal/storage"

	"go.uber.org/zap"
)

const imagePrefix = "images"

// ImageService — загрузка и выдача изображений: строки в БД, байты в
// объектном хранилище.
type ImageService struct {
	repo   repo.ImageRepository
	store  storage.ObjectStorage
	logger *zap.SugaredLogger
}

// NewImageService создаёт сервис изображений.
func NewImageService(r repo.ImageRepository, store storage.ObjectStorage, logger *zap.SugaredLogger) *ImageService {
	return &ImageService{repo: r, store: store, logger: logger}
}

// Add загружает файлы и создаёт записи. Вне альбома title обязателен и файл
// один (проверяет хендлер); внутри альбома заголовок по умолчанию — имя файла.
func (s *ImageService) Add(ctx context.Context, userID uint, albumID *uint, title string, files []*multipart.FileHeader) ([]model.Image, error) {
	images := make([]model.Image, 0, len(files))
	for _, fh := range files {
		key, err := uploadMultipart(ctx, s.store, imagePrefix, fh)
		if err != nil {
			return nil, err
		}

		imgTitle := title
		if imgTitle == "" {
			imgTitle = fh.Filename
		}

		img, err := s.repo.Create(ctx, &model.Image{
			UserID:   userID,
			Title:    imgTitle,
			FilePath: key,
			AlbumID:  albumID,
		})
		if err != nil {
			return nil, err
		}

		out := *img
		out.FilePath = s.store.PublicURL(key)
		images = append(images, out)
	}
	return images, nil
}

// List возвращает изображения владельца (опционально одного альбома)
// с публичными URL.
func (s *ImageService) List(ctx context.Context, userID uint, albumID *uint) ([]model.Image, error) {
	images, err := s.repo.ListByUser(ctx, userID, albumID)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].FilePath = s.store.PublicURL(images[i].FilePath)
	}
	return images, nil
}

// Delete удаляет запись и затем объект. Ошибка удаления объекта логируется,
// но клиенту не мешает: строка уже удалена.
func (s *ImageService) Delete(ctx context.Context, userID, id uint) error {
	img, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}
	if err := s.store.Delete(ctx, img.FilePath); err != nil {
		s.logger.Errorw("failed to delete image object", "key", img.FilePath, "error", err)
	}
	return nil
}
