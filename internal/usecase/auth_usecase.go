package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"hireall/internal/pkg/jwt"
	"hireall/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.User, string, error)
	Login(ctx context.Context, in LoginInput) (repository.User, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return repository.User{}, "", ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < 8 {
		return repository.User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.User{}, "", ErrInternal
	}

	usr, err := u.users.Create(ctx, email, string(hash), strings.TrimSpace(in.FullName))
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return repository.User{}, "", ErrEmailAlreadyRegistered
		}
		return repository.User{}, "", ErrInternal
	}

	token, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return repository.User{}, "", ErrInternal
	}
	return sanitizeUser(usr), token, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return repository.User{}, "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, "", ErrInvalidCredentials
		}
		return repository.User{}, "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return repository.User{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email)
	if err != nil {
		return repository.User{}, "", ErrInternal
	}
	return sanitizeUser(usr), token, nil
}

func sanitizeUser(u repository.User) repository.User {
	u.PasswordHash = ""
	return u
}
