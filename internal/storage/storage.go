package storage

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ObjectStorage — контракт объектного хранилища, который нужен сервисам:
// загрузить, удалить, отдать публичный URL, выписать подписанный URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-]`)

// MakeObjectKey собирает ключ объекта "<prefix>/<uuid>_<имя>" с
// санитизацией имени файла.
func MakeObjectKey(prefix, fileName string) string {
	name := unsafeChars.ReplaceAllString(fileName, "_")
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s/%s_%s", prefix, uuid.New(), name)
}
