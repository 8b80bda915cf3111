package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(map[string]string{"DATABASE_URL": "postgres://localhost/ramen"}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "Asia/Tokyo", cfg.Location.String())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "0 4 * * *", cfg.Audit.Schedule)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Notify.EmailEnabled())
	assert.False(t, cfg.Notify.SMSEnabled())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"DATABASE_URL":         "postgres://localhost/ramen",
		"PORT":                 "9000",
		"APP_TIMEZONE":         "UTC",
		"JWT_TTL_MINUTES":      "15",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
		"HOURS_AUDIT_SCHEDULE": "off",
		"SENDGRID_API_KEY":     "key",
		"SENDGRID_FROM_EMAIL":  "from@example.com",
		"NOTIFY_EMAIL_TO":      "to@example.com",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Empty(t, cfg.Audit.Schedule)
	assert.True(t, cfg.Notify.EmailEnabled())
}

func TestLoadErrors(t *testing.T) {
	_, err := load(env(map[string]string{}))
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = load(env(map[string]string{"DATABASE_URL": "x", "APP_TIMEZONE": "Mars/Olympus"}))
	assert.ErrorContains(t, err, "APP_TIMEZONE")

	_, err = load(env(map[string]string{"DATABASE_URL": "x", "JWT_TTL_MINUTES": "-1"}))
	assert.ErrorContains(t, err, "JWT_TTL_MINUTES")
}
