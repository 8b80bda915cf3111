package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	apperrors "ramenmap/internal/errors"
	"ramenmap/internal/repository"
)

type AdminAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	CreateAdmin(ctx context.Context, email, password string) error
}

type adminAuthService struct {
	repo     repository.AdminAuthRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAdminAuthService(repo repository.AdminAuthRepository, secret string, tokenTTL time.Duration) AdminAuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &adminAuthService{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *adminAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT_SECRET not set")
	}
	admin, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", apperrors.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrUnauthorized("invalid credentials")
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

type adminCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (s *adminAuthService) CreateAdmin(ctx context.Context, email, password string) error {
	creds := adminCredentials{Email: strings.TrimSpace(email), Password: password}
	if err := validateStruct(creds); err != nil {
		return err
	}

	err := s.repo.CreateNewUser(ctx, creds.Email, creds.Password)
	if errors.Is(err, repository.ErrAdminExists) {
		return apperrors.ErrConflict("admin already exists")
	}
	return err
}
