package service

import (
	"context"
	"errors"

	"vaultbox/internal/auth"
	"vaultbox/internal/model"
	"vaultbox/internal/repo"

	"gorm.io/gorm"
)

// UserService — регистрация, вход и профиль.
type UserService struct {
	repo     repo.UserRepository
	tokens   *auth.TokenIssuer
	hashCost int
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository, tokens *auth.TokenIssuer, hashCost int) *UserService {
	return &UserService{repo: r, tokens: tokens, hashCost: hashCost}
}

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Email       string
	Username    string
	Password    string
	PhoneNumber *string
	DOB         *string
}

// Register создаёт пользователя и сразу выдаёт токен. Существующий email —
// ErrEmailTaken (пользовательская ошибка, не сбой сервера).
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, string, error) {
	_, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(in.Password, s.hashCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Email:       in.Email,
		Username:    in.Username,
		Password:    hash,
		PhoneNumber: in.PhoneNumber,
		DOB:         in.DOB,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login проверяет пару email/пароль. Ответ не различает "нет такого email"
// и "неверный пароль".
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile возвращает запись владельца токена.
func (s *UserService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

// ProfileUpdate — изменяемые поля профиля. Email и пароль этим путём
// не меняются.
type ProfileUpdate struct {
	Username       *string
	PhoneNumber    *string
	DOB            *string
	ProfilePicture *string
}

// UpdateProfile обновляет переданные поля профиля.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileUpdate) (*model.User, error) {
	updates := map[string]any{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.DOB != nil {
		updates["dob"] = *in.DOB
	}
	if in.ProfilePicture != nil {
		updates["profile_picture"] = *in.ProfilePicture
	}
	if len(updates) == 0 {
		return s.Profile(ctx, userID)
	}
	user, err := s.repo.UpdateProfile(ctx, userID, updates)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}
