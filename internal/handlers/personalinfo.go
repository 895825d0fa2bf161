package handlers

import (
	"mime/multipart"
	"net/http"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"go.uber.org/zap"
)

// PersonalInfoHandler — файлы персональной информации.
type PersonalInfoHandler struct {
	PersonalInfoService *service.PersonalInfoService
	Logger              *zap.SugaredLogger
	UploadMaxMB         int
}

// NewPersonalInfoHandler создаёт хендлер персональной информации.
func NewPersonalInfoHandler(svc *service.PersonalInfoService, uploadMaxMB int, logger *zap.SugaredLogger) *PersonalInfoHandler {
	return &PersonalInfoHandler{PersonalInfoService: svc, Logger: logger, UploadMaxMB: uploadMaxMB}
}

// List возвращает записи владельца.
func (h *PersonalInfoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	items, err := h.PersonalInfoService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListPersonalInfo", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Upload принимает multipart-форму: file и опционально title.
func (h *PersonalInfoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	maxBody := int64(h.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadPersonalInfo: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	fhs := r.MultipartForm.File["file"]
	if len(fhs) == 0 {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}

	item, err := h.PersonalInfoService.Add(r.Context(), userID, r.FormValue("title"), fhs[0])
	if err != nil {
		writeServiceError(w, h.Logger, "UploadPersonalInfo", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update меняет заголовок и/или подменяет файл записи.
func (h *PersonalInfoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	maxBody := int64(h.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UpdatePersonalInfo: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var title *string
	if _, ok := r.MultipartForm.Value["title"]; ok {
		v := r.FormValue("title")
		title = &v
	}

	var file *multipart.FileHeader
	if fhs := r.MultipartForm.File["file"]; len(fhs) > 0 {
		file = fhs[0]
	}

	if title == nil && file == nil {
		writeError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	item, err := h.PersonalInfoService.Update(r.Context(), userID, id, title, file)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdatePersonalInfo", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete удаляет запись владельца.
func (h *PersonalInfoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.PersonalInfoService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeletePersonalInfo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Download отвечает редиректом на подписанный URL объекта.
func (h *PersonalInfoHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.PersonalInfoService.DownloadURL(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, h.Logger, "DownloadPersonalInfo", err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}
