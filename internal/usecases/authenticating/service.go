// Package authenticating protege as rotas de escrita com uma senha de administrador
// e tokens JWT de curta duração.
package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "revenue-dashboard-api"

type Authenticator interface {
	Enabled() bool
	Login(password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg config.Auth
	key []byte
	now func() time.Time
}

func NewService(cfg config.Auth, secretKey string) *Service {
	return &Service{
		cfg: cfg,
		key: []byte(secretKey),
		now: time.Now,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// Login compara a senha com ADMIN_PASSWORD_HASH e devolve um token assinado
func (s *Service) Login(password string) (*domain.LoginResponse, error) {
	if !s.cfg.Enabled {
		return nil, NewAuthError(ErrAuthDisabled, apiErrors.ErrNotFound, "")
	}

	if password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Password is required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Invalid password")
	}

	tokenID, err := utils.GenerateID(21)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error generating token")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.cfg.TokenTTL)

	claims := domain.Claims{
		Role: domain.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   domain.AdminRole,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error generating token")
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expired")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Invalid token")
	}

	if claims.Role != domain.AdminRole {
		return nil, NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "Admin role required")
	}

	return claims, nil
}
