package handlers

import (
	"net/http"
	"strconv"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"go.uber.org/zap"
)

// ImageHandler — загрузка и выдача изображений.
type ImageHandler struct {
	ImageService *service.ImageService
	Logger       *zap.SugaredLogger
	UploadMaxMB  int
}

// NewImageHandler создаёт хендлер изображений.
func NewImageHandler(imageService *service.ImageService, uploadMaxMB int, logger *zap.SugaredLogger) *ImageHandler {
	return &ImageHandler{ImageService: imageService, Logger: logger, UploadMaxMB: uploadMaxMB}
}

// List возвращает изображения владельца; ?album_id= сужает до альбома.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	albumID, err := optionalUintQuery(r, "album_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	images, err := h.ImageService.List(r.Context(), userID, albumID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListImages", err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

// Upload принимает multipart-форму: files (один и более), опционально
// title и album_id. Вне альбома файл ровно один и title обязателен.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	// Лимит общего тела запроса
	maxBody := int64(h.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadImage: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "missing files")
		return
	}

	title := r.FormValue("title")

	var albumID *uint
	if raw := r.FormValue("album_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid album_id")
			return
		}
		u := uint(v)
		albumID = &u
	}

	if albumID == nil {
		if len(files) > 1 {
			writeError(w, http.StatusBadRequest, "multiple files require album_id")
			return
		}
		if title == "" {
			writeError(w, http.StatusBadRequest, "missing title")
			return
		}
	}

	images, err := h.ImageService.Add(r.Context(), userID, albumID, title, files)
	if err != nil {
		writeServiceError(w, h.Logger, "UploadImage", err)
		return
	}
	writeJSON(w, http.StatusCreated, images)
}

// Delete удаляет изображение владельца.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.ImageService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteImage", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
