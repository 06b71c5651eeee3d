package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func callProtected(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	authz := NewAuthz(&cfg.AuthCfg{JWTSecret: testSecret})
	handler := authz.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireAdmin(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":      "admin-1",
		"is_admin": true,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	rec := callProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAdminMissingToken(t *testing.T) {
	for _, header := range []string{"", "Basic abc", "bearer lowercase"} {
		rec := callProtected(t, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_request")
	}
}

func TestRequireAdminInvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{
			"is_admin": true,
			"exp":      time.Now().Add(time.Hour).Unix(),
		})},
		{"expired beyond leeway", signToken(t, testSecret, jwt.MapClaims{
			"is_admin": true,
			"exp":      time.Now().Add(-time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callProtected(t, "Bearer "+tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
		})
	}
}

func TestRequireAdminExpiredWithinLeeway(t *testing.T) {
	// Токен истек 10 секунд назад, но небольшой перекос часов допускается
	token := signToken(t, testSecret, jwt.MapClaims{
		"is_admin": true,
		"exp":      time.Now().Add(-10 * time.Second).Unix(),
	})

	rec := callProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAdminNotAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"is_admin false", jwt.MapClaims{"is_admin": false, "exp": time.Now().Add(time.Hour).Unix()}},
		{"is_admin missing", jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(time.Hour).Unix()}},
		{"is_admin wrong type", jwt.MapClaims{"is_admin": "true", "exp": time.Now().Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := callProtected(t, "Bearer "+signToken(t, testSecret, tt.claims))
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
		})
	}
}
