package service

import (
	"context"
	"time"

	"vaultbox/internal/fieldcrypt"
	"vaultbox/internal/model"
	"vaultbox/internal/repo"

	"go.uber.org/zap"
)

const defaultCardColor = "from-gray-900 to-gray-800"

// CardService шифрует чувствительные поля карты на записи и расшифровывает
// на чтении. Битая запись помечается, а не роняет список.
type CardService struct {
	repo   repo.CardRepository
	cipher *fieldcrypt.Cipher
	logger *zap.SugaredLogger
}

// NewCardService создаёт сервис карт.
func NewCardService(r repo.CardRepository, cipher *fieldcrypt.Cipher, logger *zap.SugaredLogger) *CardService {
	return &CardService{repo: r, cipher: cipher, logger: logger}
}

// CardInput — поля карты от клиента, открытым текстом.
type CardInput struct {
	CardHolderName string
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardType       string
	BankName       *string
	CardColor      string
}

// CardView — карта в ответе API. Полный номер и CVV присутствуют только там,
// где контракт это обещает; у битой записи выставлен DecryptError.
type CardView struct {
	ID             uint      `json:"id"`
	CardHolderName string    `json:"card_holder_name"`
	MaskedNumber   string    `json:"card_number_masked,omitempty"`
	Number         string    `json:"card_number_plain,omitempty"`
	CVV            string    `json:"cvv_plain,omitempty"`
	ExpiryDate     string    `json:"expiry_date"`
	CardType       string    `json:"card_type"`
	BankName       *string   `json:"bank_name,omitempty"`
	CardColor      string    `json:"card_color"`
	CreatedAt      time.Time `json:"created_at"`
	DecryptError   bool      `json:"decrypt_error,omitempty"`
}

func maskNumber(plain string) string {
	last4 := plain
	if len(plain) > 4 {
		last4 = plain[len(plain)-4:]
	}
	return "**** **** **** " + last4
}

// Create шифрует номер и CVV и сохраняет карту. В ответе номер только
// маскированный.
func (s *CardService) Create(ctx context.Context, userID uint, in CardInput) (*CardView, error) {
	encNumber, err := s.cipher.Encrypt(in.CardNumber)
	if err != nil {
		return nil, err
	}
	encCVV, err := s.cipher.Encrypt(in.CVV)
	if err != nil {
		return nil, err
	}

	color := in.CardColor
	if color == "" {
		color = defaultCardColor
	}

	card, err := s.repo.Create(ctx, &model.Card{
		UserID:         userID,
		CardHolderName: in.CardHolderName,
		CardNumber:     encNumber,
		ExpiryDate:     in.ExpiryDate,
		CVV:            encCVV,
		CardType:       in.CardType,
		BankName:       in.BankName,
		CardColor:      color,
	})
	if err != nil {
		return nil, err
	}

	v := viewOf(card)
	v.MaskedNumber = maskNumber(in.CardNumber)
	return v, nil
}

// List возвращает карты владельца с расшифрованными полями. Запись, которую
// не удалось расшифровать, отдаётся с DecryptError вместо значений — одна
// битая карта не ломает весь ответ.
func (s *CardService) List(ctx context.Context, userID uint) ([]CardView, error) {
	cards, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]CardView, 0, len(cards))
	for _, card := range cards {
		v := viewOf(&card)
		number, numErr := s.cipher.Decrypt(card.CardNumber)
		cvv, cvvErr := s.cipher.Decrypt(card.CVV)
		if numErr != nil || cvvErr != nil {
			s.logger.Errorw("card decrypt failed", "card_id", card.ID)
			v.DecryptError = true
		} else {
			v.MaskedNumber = maskNumber(number)
			v.Number = number
			v.CVV = cvv
		}
		views = append(views, *v)
	}
	return views, nil
}

// Update перешифровывает поля и обновляет карту владельца.
func (s *CardService) Update(ctx context.Context, userID, id uint, in CardInput) (*CardView, error) {
	encNumber, err := s.cipher.Encrypt(in.CardNumber)
	if err != nil {
		return nil, err
	}
	encCVV, err := s.cipher.Encrypt(in.CVV)
	if err != nil {
		return nil, err
	}

	color := in.CardColor
	if color == "" {
		color = defaultCardColor
	}

	card, err := s.repo.Update(ctx, userID, id, map[string]any{
		"card_holder_name": in.CardHolderName,
		"card_number":      encNumber,
		"expiry_date":      in.ExpiryDate,
		"cvv":              encCVV,
		"card_type":        in.CardType,
		"bank_name":        in.BankName,
		"card_color":       color,
	})
	if err != nil {
		return nil, mapNotFound(err)
	}

	v := viewOf(card)
	v.MaskedNumber = maskNumber(in.CardNumber)
	return v, nil
}

// Delete удаляет карту владельца.
func (s *CardService) Delete(ctx context.Context, userID, id uint) error {
	return mapNotFound(s.repo.Delete(ctx, userID, id))
}

func viewOf(card *model.Card) *CardView {
	return &CardView{
		ID:             card.ID,
		CardHolderName: card.CardHolderName,
		ExpiryDate:     card.ExpiryDate,
		CardType:       card.CardType,
		BankName:       card.BankName,
		CardColor:      card.CardColor,
		CreatedAt:      card.CreatedAt,
	}
}
