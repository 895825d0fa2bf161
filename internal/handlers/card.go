package handlers

import (
	"encoding/json"
	"net/http"

	"vaultbox/internal/middleware"
	"vaultbox/internal/service"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CardHandler — CRUD платёжных карт.
type CardHandler struct {
	CardService *service.CardService
	Logger      *zap.SugaredLogger
	validate    *validator.Validate
}

// NewCardHandler создаёт хендлер карт.
func NewCardHandler(cardService *service.CardService, logger *zap.SugaredLogger) *CardHandler {
	return &CardHandler{CardService: cardService, Logger: logger, validate: validator.New()}
}

// CardRequest — тело создания/обновления карты, открытым текстом.
type CardRequest struct {
	CardHolderName string  `json:"card_holder_name" validate:"required,min=1,max=100"`
	CardNumber     string  `json:"card_number" validate:"required,numeric,min=12,max=19"`
	ExpiryDate     string  `json:"expiry_date" validate:"required"`
	CVV            string  `json:"cvv" validate:"required,numeric,min=3,max=4"`
	CardType       string  `json:"card_type" validate:"required"`
	BankName       *string `json:"bank_name,omitempty"`
	CardColor      string  `json:"card_color,omitempty"`
}

func (req *CardRequest) toInput() service.CardInput {
	return service.CardInput{
		CardHolderName: req.CardHolderName,
		CardNumber:     req.CardNumber,
		ExpiryDate:     req.ExpiryDate,
		CVV:            req.CVV,
		CardType:       req.CardType,
		BankName:       req.BankName,
		CardColor:      req.CardColor,
	}
}

// List возвращает карты владельца с расшифрованными полями.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	cards, err := h.CardService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, "ListCards", err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// Create сохраняет карту. В ответе только маскированный номер.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateCard: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.CardService.Create(r.Context(), userID, req.toInput())
	if err != nil {
		writeServiceError(w, h.Logger, "CreateCard", err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// Update обновляет карту владельца.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("UpdateCard: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.CardService.Update(r.Context(), userID, id, req.toInput())
	if err != nil {
		writeServiceError(w, h.Logger, "UpdateCard", err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// Delete удаляет карту владельца.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.CardService.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.Logger, "DeleteCard", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
