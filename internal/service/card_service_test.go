package service

import (
	"context"
	"testing"

	"vaultbox/internal/fieldcrypt"
	"vaultbox/internal/model"
	"vaultbox/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// мок для repo.CardRepository
type mockCardRepo struct{ mock.Mock }

func (m *mockCardRepo) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	args := m.Called(ctx, card)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) ListByUser(ctx context.Context, userID uint) ([]model.Card, error) {
	args := m.Called(ctx, userID)
	if cards, ok := args.Get(0).([]model.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) GetByID(ctx context.Context, userID, id uint) (*model.Card, error) {
	args := m.Called(ctx, userID, id)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) Update(ctx context.Context, userID, id uint, updates map[string]any) (*model.Card, error) {
	args := m.Called(ctx, userID, id, updates)
	if c, ok := args.Get(0).(*model.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardRepo) Delete(ctx context.Context, userID, id uint) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

var _ repo.CardRepository = (*mockCardRepo)(nil)

func newCardService(t *testing.T, m repo.CardRepository) (*CardService, *fieldcrypt.Cipher) {
	t.Helper()
	cipher, err := fieldcrypt.New("card-test-secret")
	assert.NoError(t, err)
	return NewCardService(m, cipher, zap.NewNop().Sugar()), cipher
}

func TestCardService_Create_EncryptsSensitiveFields(t *testing.T) {
	ctx := context.Background()
	m := new(mockCardRepo)
	svc, cipher := newCardService(t, m)

	m.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		// номер и CVV не должны дойти до БД открытым текстом
		if c.CardNumber == "4111111111111111" || c.CVV == "123" {
			return false
		}
		num, err1 := cipher.Decrypt(c.CardNumber)
		cvv, err2 := cipher.Decrypt(c.CVV)
		return err1 == nil && err2 == nil && num == "4111111111111111" && cvv == "123"
	})).Return(&model.Card{ID: 1, UserID: 7, CardHolderName: "JOHN DOE"}, nil).Once()

	view, err := svc.Create(ctx, 7, CardInput{
		CardHolderName: "JOHN DOE",
		CardNumber:     "4111111111111111",
		ExpiryDate:     "12/27",
		CVV:            "123",
		CardType:       "visa",
	})
	assert.NoError(t, err)
	assert.Equal(t, "**** **** **** 1111", view.MaskedNumber)
	assert.Empty(t, view.Number)
	assert.Empty(t, view.CVV)
	assert.Equal(t, defaultCardColor, view.CardColor)
	m.AssertExpectations(t)
}

func TestCardService_List_DecryptsAndMasks(t *testing.T) {
	ctx := context.Background()
	m := new(mockCardRepo)
	svc, cipher := newCardService(t, m)

	encNum, _ := cipher.Encrypt("5555444433332222")
	encCVV, _ := cipher.Encrypt("999")
	m.On("ListByUser", mock.Anything, uint(7)).Return([]model.Card{
		{ID: 3, UserID: 7, CardHolderName: "ALICE", CardNumber: encNum, CVV: encCVV, ExpiryDate: "01/28"},
	}, nil).Once()

	views, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "5555444433332222", views[0].Number)
	assert.Equal(t, "999", views[0].CVV)
	assert.Equal(t, "**** **** **** 2222", views[0].MaskedNumber)
	assert.False(t, views[0].DecryptError)
	m.AssertExpectations(t)
}

func TestCardService_List_CorruptRecordDoesNotBreakResponse(t *testing.T) {
	ctx := context.Background()
	m := new(mockCardRepo)
	svc, cipher := newCardService(t, m)

	encNum, _ := cipher.Encrypt("4000000000000002")
	encCVV, _ := cipher.Encrypt("111")
	m.On("ListByUser", mock.Anything, uint(7)).Return([]model.Card{
		{ID: 1, UserID: 7, CardNumber: encNum, CVV: encCVV},
		{ID: 2, UserID: 7, CardNumber: "not-a-cipher-record", CVV: encCVV},
	}, nil).Once()

	views, err := svc.List(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, views, 2)

	assert.False(t, views[0].DecryptError)
	assert.Equal(t, "4000000000000002", views[0].Number)

	// битая запись помечена, но чувствительных полей не содержит
	assert.True(t, views[1].DecryptError)
	assert.Empty(t, views[1].Number)
	assert.Empty(t, views[1].CVV)
	assert.Empty(t, views[1].MaskedNumber)
	m.AssertExpectations(t)
}

func TestCardService_UpdateDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	m := new(mockCardRepo)
	svc, _ := newCardService(t, m)

	m.On("Update", mock.Anything, uint(7), uint(42), mock.Anything).
		Return((*model.Card)(nil), gorm.ErrRecordNotFound).Once()
	m.On("Delete", mock.Anything, uint(7), uint(42)).
		Return(gorm.ErrRecordNotFound).Once()

	_, err := svc.Update(ctx, 7, 42, CardInput{CardNumber: "4111111111111111", CVV: "123"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, 7, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	m.AssertExpectations(t)
}
