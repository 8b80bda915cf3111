package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the login handler sets for browser sessions.
const CookieName = "admin_token"

type ctxKey struct{}

// Claims identifies the admin behind a request.
type Claims struct {
	AdminID int
	Email   string
}

// FromContext returns the claims stored by AdminAuthMiddleware.
func FromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(Claims)
	return c, ok
}

// NewAdminAuthMiddleware accepts an HS256 token signed with secret, from
// either the Authorization header or the admin_token cookie.
func NewAdminAuthMiddleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFromRequest(r)
			if raw == "" || len(key) == 0 {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			claims, err := parseToken(raw, key)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func parseToken(raw string, key []byte) (Claims, error) {
	mc := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, err
	}
	id, ok := mc["admin_id"].(float64)
	if !ok {
		return Claims{}, fmt.Errorf("token missing admin_id")
	}
	email, _ := mc["email"].(string)
	return Claims{AdminID: int(id), Email: email}, nil
}
