package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridNotifier(t *testing.T) {
	var auth string
	var payload struct {
		Subject string `json:"subject"`
		From    struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"from"`
	}
	status := http.StatusAccepted
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&payload)
		w.WriteHeader(status)
	}))
	defer srv.Close()

	n := NewSendGridNotifier("SG.test", "noreply@example.com", "", "admin@example.com")
	n.client.BaseURL = srv.URL

	require.NoError(t, n.Notify(context.Background(), "2 shop(s) flagged", "details"))
	assert.Equal(t, "Bearer SG.test", auth)
	assert.Equal(t, "2 shop(s) flagged", payload.Subject)
	assert.Equal(t, "noreply@example.com", payload.From.Email)
	assert.Equal(t, "Ramen Map", payload.From.Name)

	status = http.StatusBadRequest
	assert.ErrorContains(t, n.Notify(context.Background(), "subject", "body"), "status 400")
}
