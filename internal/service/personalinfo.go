package service

import (
	"context"
	"mime/multipart"
	"time"

	"vaultbox/internal/model"
	"vaultbox/internal/repo"
	"vaultbox/internal/storage"

	"go.uber.org/zap"
)

const personalInfoPrefix = "personal-info"

// PersonalInfoService — файлы персональной информации (паспорт, СНИЛС и т.п.).
type PersonalInfoService struct {
	repo      repo.PersonalInfoRepository
	store     storage.ObjectStorage
	logger    *zap.SugaredLogger
	signedTTL time.Duration
}

// NewPersonalInfoService создаёт сервис персональной информации.
func NewPersonalInfoService(r repo.PersonalInfoRepository, store storage.ObjectStorage, signedTTL time.Duration, logger *zap.SugaredLogger) *PersonalInfoService {
	return &PersonalInfoService{repo: r, store: store, logger: logger, signedTTL: signedTTL}
}

// List возвращает записи владельца с публичными URL.
func (s *PersonalInfoService) List(ctx context.Context, userID uint) ([]model.PersonalInfoItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].FilePath = s.store.PublicURL(items[i].FilePath)
	}
	return items, nil
}

// Add загружает файл и создаёт запись. Заголовок по умолчанию — имя файла.
func (s *PersonalInfoService) Add(ctx context.Context, userID uint, title string, fh *multipart.FileHeader) (*model.PersonalInfoItem, error) {
	key, err := uploadMultipart(ctx, s.store, personalInfoPrefix, fh)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = fh.Filename
	}

	item, err := s.repo.Create(ctx, &model.PersonalInfoItem{
		UserID:   userID,
		Title:    title,
		FilePath: key,
	})
	if err != nil {
		return nil, err
	}

	out := *item
	out.FilePath = s.store.PublicURL(key)
	return &out, nil
}

// Update меняет заголовок и/или подменяет файл; старый объект удаляется
// после успешного обновления строки.
func (s *PersonalInfoService) Update(ctx context.Context, userID, id uint, title *string, file *multipart.FileHeader) (*model.PersonalInfoItem, error) {
	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	updates := map[string]any{}
	if title != nil {
		updates["title"] = *title
	}

	oldKey := ""
	if file != nil {
		key, err := uploadMultipart(ctx, s.store, personalInfoPrefix, file)
		if err != nil {
			return nil, err
		}
		updates["file_path"] = key
		oldKey = current.FilePath
	}

	if len(updates) == 0 {
		out := *current
		out.FilePath = s.store.PublicURL(out.FilePath)
		return &out, nil
	}

	item, err := s.repo.Update(ctx, userID, id, updates)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			s.logger.Errorw("failed to delete replaced personal info object", "key", oldKey, "error", err)
		}
	}

	out := *item
	out.FilePath = s.store.PublicURL(out.FilePath)
	return &out, nil
}

// Delete удаляет запись, затем объект (ошибка объекта только логируется).
func (s *PersonalInfoService) Delete(ctx context.Context, userID, id uint) error {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}
	if err := s.store.Delete(ctx, item.FilePath); err != nil {
		s.logger.Errorw("failed to delete personal info object", "key", item.FilePath, "error", err)
	}
	return nil
}

// DownloadURL выписывает подписанный URL на объект записи.
func (s *PersonalInfoService) DownloadURL(ctx context.Context, userID, id uint) (string, error) {
	item, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return s.store.SignedURL(ctx, item.FilePath, s.signedTTL)
}
