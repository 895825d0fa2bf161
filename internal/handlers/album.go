package handlers

import (
	"encoding/json"
	"net/http"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AlbumHandler — альбомы изображений.
type AlbumHandler struct {
	AlbumService *service.AlbumService
	Logger       *zap.SugaredLogger
	validate     *validator.Validate
}

// NewAlbumHandler создаёт хендлер альбомов.
func NewAlbumHandler(albumService *service.AlbumService, logger *zap.SugaredLogger) *AlbumHandler {
	return &AlbumHandler{AlbumService: albumService, Logger: logger, validate: validator.New()}
}

// AlbumRequest — тело создания альбома.
type AlbumRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// List возвращает альбомы владельца.
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	albums, err := h.AlbumService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListAlbums", err)
		return
	}
	writeJSON(w, http.StatusOK, albums)
}

// Create создаёт альбом.
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req AlbumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateAlbum: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	album, err := h.AlbumService.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateAlbum", err)
		return
	}
	writeJSON(w, http.StatusCreated, album)
}

// Delete каскадно удаляет альбом вместе со всеми изображениями.
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.AlbumService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteAlbum", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
