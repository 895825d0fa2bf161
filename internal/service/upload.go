package service

import (
	"context"
	"mime/multipart"

	"vaultbox/internal/storage"
)

// uploadMultipart загружает один файл формы в объектное хранилище и
// возвращает ключ объекта.
func uploadMultipart(ctx context.Context, store storage.ObjectStorage, prefix string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.MakeObjectKey(prefix, fh.Filename)
	if err := store.Upload(ctx, key, f, contentType); err != nil {
		return "", err
	}
	return key, nil
}
