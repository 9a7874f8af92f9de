package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

type stubAuthenticator struct {
	claims *domain.Claims
	err    error
}

func (s stubAuthenticator) Enabled() bool { return true }

func (s stubAuthenticator) Login(string) (*domain.LoginResponse, error) { return nil, nil }

func (s stubAuthenticator) ValidateToken(string) (*domain.Claims, error) { return s.claims, s.err }

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestCors(t *testing.T) {
	handler := Cors()(okHandler)

	t.Run("OPTIONS termina com 200 vazio", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/set-daily", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("GET segue com os cabeçalhos", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-revenue", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("cabeçalhos extras", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Cors("Authorization")(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

		assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestAuthMiddleware(t *testing.T) {
	admin := &domain.Claims{Role: domain.AdminRole, RegisteredClaims: jwt.RegisteredClaims{ID: "abc"}}

	tests := []struct {
		name       string
		header     string
		auth       stubAuthenticator
		wantStatus int
	}{
		{"sem cabeçalho", "", stubAuthenticator{claims: admin}, http.StatusUnauthorized},
		{"sem Bearer", "Token x", stubAuthenticator{claims: admin}, http.StatusUnauthorized},
		{
			"token expirado",
			"Bearer x",
			stubAuthenticator{err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")},
			http.StatusUnauthorized,
		},
		{"erro genérico", "Bearer x", stubAuthenticator{err: errors.New("boom")}, http.StatusUnauthorized},
		{"token válido", "Bearer x", stubAuthenticator{claims: admin}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/set-revenue", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.auth)(AdminOnly()(okHandler)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("sem claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("papel não permitido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), ContextKeyClaims, &domain.Claims{Role: "viewer"}))
		rec := httptest.NewRecorder()

		AdminOnly()(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","error":"Server error"}`, rec.Body.String())
}
