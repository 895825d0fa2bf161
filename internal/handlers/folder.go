package handlers

import (
	"encoding/json"
	"net/http"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FolderHandler — папки документов.
type FolderHandler struct {
	FolderService *service.FolderService
	Logger        *zap.SugaredLogger
	validate      *validator.Validate
}

// NewFolderHandler создаёт хендлер папок.
func NewFolderHandler(folderService *service.FolderService, logger *zap.SugaredLogger) *FolderHandler {
	return &FolderHandler{FolderService: folderService, Logger: logger, validate: validator.New()}
}

// FolderRequest — тело создания папки.
type FolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// List возвращает папки владельца.
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	folders, err := h.FolderService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListFolders", err)
		return
	}
	writeJSON(w, http.StatusOK, folders)
}

// Create создаёт папку.
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateFolder: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.FolderService.Create(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, h.Logger, "CreateFolder", err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

// Delete каскадно удаляет папку вместе с документами.
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.FolderService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteFolder", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
