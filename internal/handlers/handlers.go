package handlers

import (
	"vaultbox/internal/auth"
	"vaultbox/internal/config"
	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler держит собранный роутер приложения.
type Handler struct {
	Router chi.Router
}

// Services — сервисный слой целиком, чтобы не раздувать сигнатуру NewHandler.
type Services struct {
	User         *service.UserService
	Card         *service.CardService
	Image        *service.ImageService
	Album        *service.AlbumService
	Folder       *service.FolderService
	Document     *service.DocumentService
	PersonalInfo *service.PersonalInfoService
}

// NewHandler разводящий для хендлеров
func NewHandler(
	svcs Services,
	issuer *auth.TokenIssuer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(svcs.User, logger)
	cardHandler := NewCardHandler(svcs.Card, logger)
	imageHandler := NewImageHandler(svcs.Image, cfg.UploadMaxMB, logger)
	albumHandler := NewAlbumHandler(svcs.Album, logger)
	folderHandler := NewFolderHandler(svcs.Folder, logger)
	documentHandler := NewDocumentHandler(svcs.Document, cfg.UploadMaxMB, logger)
	personalInfoHandler := NewPersonalInfoHandler(svcs.PersonalInfo, cfg.UploadMaxMB, logger)

	// Открытые маршруты
	r.Post("/api/register", userHandler.Register)
	r.Post("/api/login", userHandler.Login)

	// Всё остальное только с токеном
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(issuer))

		r.Get("/api/me", userHandler.Profile)
		r.Put("/api/me", userHandler.UpdateProfile)

		r.Get("/api/cards", cardHandler.List)
		r.Post("/api/cards", cardHandler.Create)
		r.Put("/api/cards/{id}", cardHandler.Update)
		r.Delete("/api/cards/{id}", cardHandler.Delete)

		r.Get("/api/images", imageHandler.List)
		r.Post("/api/images", imageHandler.Upload)
		r.Delete("/api/images/{id}", imageHandler.Delete)

		r.Get("/api/albums", albumHandler.List)
		r.Post("/api/albums", albumHandler.Create)
		r.Delete("/api/albums/{id}", albumHandler.Delete)

		r.Get("/api/folders", folderHandler.List)
		r.Post("/api/folders", folderHandler.Create)
		r.Delete("/api/folders/{id}", folderHandler.Delete)

		r.Get("/api/documents", documentHandler.List)
		r.Post("/api/documents", documentHandler.Upload)
		r.Put("/api/documents/{id}", documentHandler.Update)
		r.Delete("/api/documents/{id}", documentHandler.Delete)
		r.Post("/api/documents/delete-batch", documentHandler.DeleteBatch)
		r.Get("/api/documents/{id}/download", documentHandler.Download)

		r.Get("/api/personal-info", personalInfoHandler.List)
		r.Post("/api/personal-info", personalInfoHandler.Upload)
		r.Put("/api/personal-info/{id}", personalInfoHandler.Update)
		r.Delete("/api/personal-info/{id}", personalInfoHandler.Delete)
		r.Get("/api/personal-info/{id}/download", personalInfoHandler.Download)
	})

	return &Handler{Router: r}
}
