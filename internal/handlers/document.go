package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"go.uber.org/zap"
)

// DocumentHandler — документы: загрузка, замена, пачечное удаление,
// скачивание по подписанному URL.
type DocumentHandler struct {
	DocumentService *service.DocumentService
	Logger          *zap.SugaredLogger
	UploadMaxMB     int
}

// NewDocumentHandler создаёт хендлер документов.
func NewDocumentHandler(documentService *service.DocumentService, uploadMaxMB int, logger *zap.SugaredLogger) *DocumentHandler {
	return &DocumentHandler{DocumentService: documentService, Logger: logger, UploadMaxMB: uploadMaxMB}
}

// List возвращает документы владельца; ?folder_id= сужает до папки.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	folderID, err := optionalUintQuery(r, "folder_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	docs, err := h.DocumentService.List(r.Context(), userID, folderID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListDocuments", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Upload принимает multipart-форму: files (один и более), опционально
// title и folder_id.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	maxBody := int64(h.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadDocument: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "missing files")
		return
	}

	title := r.FormValue("title")

	var folderID *uint
	if raw := r.FormValue("folder_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folder_id")
			return
		}
		u := uint(v)
		folderID = &u
	}

	docs, err := h.DocumentService.Add(r.Context(), userID, folderID, title, files)
	if err != nil {
		writeServiceError(w, h.Logger, "UploadDocument", err)
		return
	}
	writeJSON(w, http.StatusCreated, docs)
}

// Update меняет заголовок и/или подменяет файл документа. Тоже multipart:
// поле title и/или файл file.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	maxBody := int64(h.UploadMaxMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UpdateDocument: invalid multipart form", "error", err)
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

	doc, err := h.DocumentService.Update(r.Context(), userID, id, title, file)
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateDocument", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Delete удаляет один документ владельца.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.DocumentService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteDocument", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteBatchRequest — список id на удаление.
type DeleteBatchRequest struct {
	IDs []uint `json:"ids"`
}

// DeleteBatch удаляет пачку документов владельца. Чужие id игнорируются.
func (h *DocumentHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req DeleteBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("DeleteBatch: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "empty ids")
		return
	}

	if err := h.DocumentService.DeleteBatch(r.Context(), userID, req.IDs); err != nil {
		writeServiceError(w, h.Logger, "DeleteBatch", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Download отвечает редиректом на короткоживущий подписанный URL объекта.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.DocumentService.DownloadURL(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, h.Logger, "DownloadDocument", err)
		return
	}
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}
