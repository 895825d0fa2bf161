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

const documentPrefix = "documents"

// DocumentService — документы: метаданные в БД, файлы в объектном хранилище.
type DocumentService struct {
	repo      repo.DocumentRepository
	store     storage.ObjectStorage
	logger    *zap.SugaredLogger
	signedTTL time.Duration
}

// NewDocumentService создаёт сервис документов.
func NewDocumentService(r repo.DocumentRepository, store storage.ObjectStorage, signedTTL time.Duration, logger *zap.SugaredLogger) *DocumentService {
	return &DocumentService{repo: r, store: store, logger: logger, signedTTL: signedTTL}
}

// Add загружает файлы и создаёт записи. Заголовок по умолчанию — имя файла.
func (s *DocumentService) Add(ctx context.Context, userID uint, folderID *uint, title string, files []*multipart.FileHeader) ([]model.Document, error) {
	docs := make([]model.Document, 0, len(files))
	for _, fh := range files {
		key, err := uploadMultipart(ctx, s.store, documentPrefix, fh)
		if err != nil {
			return nil, err
		}

		docTitle := title
		if docTitle == "" {
			docTitle = fh.Filename
		}

		doc, err := s.repo.Create(ctx, &model.Document{
			UserID:   userID,
			Title:    docTitle,
			FilePath: key,
			FolderID: folderID,
		})
		if err != nil {
			return nil, err
		}

		out := *doc
		out.FilePath = s.store.PublicURL(key)
		docs = append(docs, out)
	}
	return docs, nil
}

// List возвращает документы владельца (опционально одной папки)
// с публичными URL.
func (s *DocumentService) List(ctx context.Context, userID uint, folderID *uint) ([]model.Document, error) {
	docs, err := s.repo.ListByUser(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].FilePath = s.store.PublicURL(docs[i].FilePath)
	}
	return docs, nil
}

// Update меняет заголовок и/или подменяет файл. При замене файла старый
// объект удаляется после успешного обновления строки.
func (s *DocumentService) Update(ctx context.Context, userID, id uint, title *string, file *multipart.FileHeader) (*model.Document, error) {
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
		key, err := uploadMultipart(ctx, s.store, documentPrefix, file)
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

	doc, err := s.repo.Update(ctx, userID, id, updates)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if oldKey != "" {
		if err := s.store.Delete(ctx, oldKey); err != nil {
			s.logger.Errorw("failed to delete replaced document object", "key", oldKey, "error", err)
		}
	}

	out := *doc
	out.FilePath = s.store.PublicURL(out.FilePath)
	return &out, nil
}

// Delete удаляет запись, затем объект (ошибка объекта только логируется).
func (s *DocumentService) Delete(ctx context.Context, userID, id uint) error {
	doc, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return mapNotFound(err)
	}
	if err := s.store.Delete(ctx, doc.FilePath); err != nil {
		s.logger.Errorw("failed to delete document object", "key", doc.FilePath, "error", err)
	}
	return nil
}

// DeleteBatch удаляет пачку документов владельца. Чужие id игнорируются.
func (s *DocumentService) DeleteBatch(ctx context.Context, userID uint, ids []uint) error {
	keys, err := s.repo.DeleteBatch(ctx, userID, ids)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Errorw("failed to delete document object", "key", key, "error", err)
		}
	}
	return nil
}

// DownloadURL выписывает короткоживущий подписанный URL на объект документа.
func (s *DocumentService) DownloadURL(ctx context.Context, userID, id uint) (string, error) {
	doc, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return s.store.SignedURL(ctx, doc.FilePath, s.signedTTL)
}
