package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/amberdrive/backoffice/internal/model"
)

//go:generate mockgen -source=auth_service.go -destination=auth_service_mock.go -package=service
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
}

type TokenIssuer interface {
	Issue(principal model.Principal) (string, error)
}

type AuthService struct {
	users  UserStore
	issuer TokenIssuer
}

func NewAuthService(users UserStore, issuer TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

type LoginResult struct {
	Token string          `json:"token"`
	User  model.Principal `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	principal := model.Principal{
		ID:    user.ID,
		Name:  user.Username,
		Email: user.Email,
	}
	token, err := s.issuer.Issue(principal)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: principal}, nil
}
