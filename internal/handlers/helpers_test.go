package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"vaultbox/internal/auth"
	"vaultbox/internal/config"
	"vaultbox/internal/fieldcrypt"
	"vaultbox/internal/handlers"
	"vaultbox/internal/repo"
	"vaultbox/internal/service"
	"vaultbox/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// fakeStore — объектное хранилище в памяти для тестов хендлеров.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) Upload(_ context.Context, key string, body io.Reader, _ string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = b
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "http://store.local/test-bucket/" + key
}

func (s *fakeStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "http://store.local/test-bucket/" + key + "?signed=1", nil
}

var _ storage.ObjectStorage = (*fakeStore)(nil)

// newTestRouter поднимает полный стек на in-memory SQLite и фейковом хранилище.
func newTestRouter(t *testing.T) (http.Handler, *fakeStore) {
	t.Helper()

	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(db))

	logger := zap.NewNop().Sugar()
	cfg := &config.Config{
		SigningSecret: "test-secret",
		TokenTTL:      time.Hour,
		UploadMaxMB:   1,
		SignedURLTTL:  time.Minute,
	}

	issuer, err := auth.NewTokenIssuer(cfg.SigningSecret, cfg.TokenTTL)
	require.NoError(t, err)
	cipher, err := fieldcrypt.New(cfg.SigningSecret)
	require.NoError(t, err)

	store := newFakeStore()

	svcs := handlers.Services{
		User:         service.NewUserService(repo.NewUserRepository(db), issuer, 4),
		Card:         service.NewCardService(repo.NewCardRepository(db), cipher, logger),
		Image:        service.NewImageService(repo.NewImageRepository(db), store, logger),
		Album:        service.NewAlbumService(repo.NewAlbumRepository(db), store, logger),
		Folder:       service.NewFolderService(repo.NewFolderRepository(db), store, logger),
		Document:     service.NewDocumentService(repo.NewDocumentRepository(db), store, cfg.SignedURLTTL, logger),
		PersonalInfo: service.NewPersonalInfoService(repo.NewPersonalInfoRepository(db), store, cfg.SignedURLTTL, logger),
	}

	h := handlers.NewHandler(svcs, issuer, logger, cfg)
	return h.Router, store
}

// registerUser регистрирует пользователя через API и возвращает его токен.
func registerUser(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	body := `{"email":"` + email + `","username":"tester","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// doJSON выполняет JSON-запрос с опциональным Bearer-токеном.
func doJSON(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_AuthBoundary(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("no token", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/cards", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/cards", "not.a.jwt", "")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := registerUser(t, router, "gate@example.com")
		rr := doJSON(t, router, http.MethodGet, "/api/cards", token, "")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
