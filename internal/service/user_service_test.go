package service

import (
	"context"
	"testing"
	"time"

	"vaultbox/internal/auth"
	"vaultbox/internal/model"
	"vaultbox/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id uint, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func newTestIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	assert.NoError(t, err)
	return issuer
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, newTestIssuer(t), bcrypt.MinCost)

	t.Run("ok when email free", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").
			Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Email: "john@example.com", Username: "john"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// пароль ушёл в БД хешем, не открытым текстом
			return u.Email == "john@example.com" && u.Password != "" && u.Password != "p@ss"
		})).Return(created, nil).Once()

		user, token, err := svc.Register(ctx, RegisterInput{
			Email:    "john@example.com",
			Username: "john",
			Password: "p@ss",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(10), user.ID)
		assert.NotEmpty(t, token)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "john@example.com").
			Return(&model.User{ID: 1, Email: "john@example.com"}, nil).Once()

		user, token, err := svc.Register(ctx, RegisterInput{
			Email:    "john@example.com",
			Username: "john",
			Password: "p@ss",
		})
		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m, newTestIssuer(t), bcrypt.MinCost)

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(&model.User{ID: 2, Email: "alice@example.com", Password: string(hash)}, nil).Once()

		user, token, err := svc.Login(ctx, "alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, uint(2), user.ID)
		assert.NotEmpty(t, token)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").
			Return(&model.User{ID: 2, Email: "alice@example.com", Password: string(hash)}, nil).Once()

		user, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown email looks the same as wrong password", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		user, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}
