// Package middleware содержит HTTP-middleware административной зоны.
package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/golang-jwt/jwt/v5"
)

type Authz struct {
	cfg *cfg.AuthCfg
}

func NewAuthz(cfg *cfg.AuthCfg) *Authz {
	return &Authz{cfg: cfg}
}

// RequireAdmin проверяет Bearer JWT и требует claim is_admin=true.
func (a *Authz) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauth(w, "invalid_request", "missing bearer token")
			return
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(a.cfg.JWTSecret), nil
		}, jwt.WithLeeway(30*time.Second)) // small clock skew

		if err != nil || !token.Valid {
			unauth(w, "invalid_token", "invalid jwt")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauth(w, "invalid_token", "claims parsing error")
			return
		}

		if isAdmin, ok := claims["is_admin"].(bool); !ok || !isAdmin {
			forbidden(w, "insufficient_scope", "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauth(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	writeAuthError(w, http.StatusUnauthorized, code, desc)
}

func forbidden(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
	writeAuthError(w, http.StatusForbidden, code, desc)
}

func writeAuthError(w http.ResponseWriter, status int, code, desc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": code, "error_description": desc})
}
