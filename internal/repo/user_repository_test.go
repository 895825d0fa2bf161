package repo

import (
	"context"
	"testing"

	"vaultbox/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	u, err := r.CreateUser(ctx, &model.User{Email: "a@x.com", Username: "john", Password: "hash"})
	assert.NoError(t, err)
	assert.NotZero(t, u.ID)

	// поиск по email — найдено
	got, err := r.GetUserByEmail(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// уникальный email — вторая вставка должна дать ошибку
	_, err = r.CreateUser(ctx, &model.User{Email: "a@x.com", Username: "jane", Password: "x"})
	assert.Error(t, err)

	// поиск несуществующего — ожидаем gorm.ErrRecordNotFound
	got, err = r.GetUserByEmail(ctx, "nobody@x.com")
	assert.Nil(t, got)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	u, err := r.CreateUser(ctx, &model.User{Email: "b@x.com", Username: "bob", Password: "hash"})
	assert.NoError(t, err)

	phone := "+123456"
	got, err := r.UpdateProfile(ctx, u.ID, map[string]any{"username": "bobby", "phone_number": phone})
	assert.NoError(t, err)
	assert.Equal(t, "bobby", got.Username)
	if assert.NotNil(t, got.PhoneNumber) {
		assert.Equal(t, phone, *got.PhoneNumber)
	}

	// несуществующий пользователь
	_, err = r.UpdateProfile(ctx, 9999, map[string]any{"username": "x"})
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
