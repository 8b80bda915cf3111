package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, key string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func protected() (http.Handler, *Claims) {
	var seen Claims
	h := NewAdminAuthMiddleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &seen
}

func TestAdminAuthMiddleware(t *testing.T) {
	valid := jwt.MapClaims{"admin_id": 7, "email": "a@example.com", "exp": time.Now().Add(time.Hour).Unix()}
	expired := jwt.MapClaims{"admin_id": 7, "exp": time.Now().Add(-time.Hour).Unix()}
	noExp := jwt.MapClaims{"admin_id": 7}

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{name: "missing", want: http.StatusUnauthorized},
		{name: "bearer", header: "Bearer " + sign(t, secret, jwt.SigningMethodHS256, valid), want: http.StatusNoContent},
		{name: "cookie", cookie: sign(t, secret, jwt.SigningMethodHS256, valid), want: http.StatusNoContent},
		{name: "wrong secret", header: "Bearer " + sign(t, "other", jwt.SigningMethodHS256, valid), want: http.StatusUnauthorized},
		{name: "wrong alg", header: "Bearer " + sign(t, secret, jwt.SigningMethodHS512, valid), want: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + sign(t, secret, jwt.SigningMethodHS256, expired), want: http.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + sign(t, secret, jwt.SigningMethodHS256, noExp), want: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-token", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, seen := protected()
			req := httptest.NewRequest(http.MethodGet, "/admin/add", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, Claims{AdminID: 7, Email: "a@example.com"}, *seen)
			}
		})
	}
}

func TestMiddlewareRejectsEmptySecret(t *testing.T) {
	h := NewAdminAuthMiddleware("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/admin/add", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, "any", jwt.SigningMethodHS256, jwt.MapClaims{"admin_id": 1}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
