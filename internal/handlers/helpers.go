package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"vaultbox/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// writeJSON пишет ответ в JSON с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError — единый формат ошибки для клиента.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError маппит ошибки сервисного слоя в HTTP-статусы.
// Неизвестные ошибки схлопываются в internal error без деталей.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	default:
		logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// idParam читает числовой {id} из пути.
func idParam(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// optionalUintQuery читает опциональный числовой query-параметр.
func optionalUintQuery(r *http.Request, name string) (*uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	u := uint(v)
	return &u, nil
}
