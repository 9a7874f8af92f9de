package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(config.Auth{
		Enabled:           true,
		AdminPasswordHash: string(hash),
		TokenTTL:          time.Hour,
	}, "test-secret")
}

func TestService_LoginAndValidate(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Login("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := service.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.AdminRole, claims.Role)
	assert.Len(t, claims.ID, 21)
}

func TestService_LoginFailures(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))

	_, err = service.Login("")
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	disabled := NewService(config.Auth{}, "test-secret")
	assert.False(t, disabled.Enabled())
	_, err = disabled.Login("s3cret")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestService_ValidateTokenFailures(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Login("s3cret")
	require.NoError(t, err)

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { service.now = time.Now }()

		_, err := service.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		other := NewService(service.cfg, "other-secret")

		_, err := other.ValidateToken(resp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("papel diferente de admin", func(t *testing.T) {
		claims := domain.Claims{
			Role: "viewer",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    issuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInsufficientPrivilege)
	})

	t.Run("lixo", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
