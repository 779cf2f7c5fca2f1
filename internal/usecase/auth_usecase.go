package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (repository.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, email, password string) (repository.User, string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return repository.User{}, "", "", ErrUnauthorized
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, "", "", ErrUnauthorized
		}
		return repository.User{}, "", "", ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return repository.User{}, "", "", ErrUnauthorized
	}

	access, err := u.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return repository.User{}, "", "", ErrInternal
	}

	return user, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		return "", "", ErrUnauthorized
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", "", ErrUnauthorized
	}

	// Re-read the user so a role change or deletion cuts the refresh chain.
	user, err := u.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", ErrUnauthorized
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, refresh, nil
}
