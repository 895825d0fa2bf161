package handlers

import (
	"encoding/json"
	"net/http"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserHandler — регистрация, вход и профиль.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		UserService: userService,
		Logger:      logger,
		validate:    validator.New(),
	}
}

// RegisterRequest — тело регистрации.
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Username    string  `json:"username" validate:"required,min=1,max=100"`
	Password    string  `json:"password" validate:"required,min=6,max=72"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	DOB         *string `json:"dob,omitempty"`
}

// LoginRequest — тело входа.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse — пользователь плюс токен; модель сама прячет пароль через json:"-".
type authResponse struct {
	User  any    `json:"user"`
	Token string `json:"token"`
}

// Register регистрирует пользователя и сразу выдаёт токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DOB:         req.DOB,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

// Login проверяет учётные данные и выдаёт токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, "Login", err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Profile возвращает профиль владельца токена.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	user, err := h.UserService.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "Profile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ProfileUpdateRequest — изменяемые поля профиля.
type ProfileUpdateRequest struct {
	Username       *string `json:"username,omitempty" validate:"omitempty,min=1,max=100"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	DOB            *string `json:"dob,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// UpdateProfile частично обновляет профиль.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateProfile: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), userID, service.ProfileUpdate{
		Username:       req.Username,
		PhoneNumber:    req.PhoneNumber,
		DOB:            req.DOB,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateProfile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
