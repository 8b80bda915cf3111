package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	Server      ServerConfig
	Location    *time.Location
	Auth        AuthConfig
	Logging     LoggingConfig
	Audit       AuditConfig
	Notify      NotifyConfig
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
	// Directory receives a daily log file next to stdout. Empty logs to
	// stdout only.
	Directory string
}

type AuditConfig struct {
	// Schedule is a standard 5-field cron expression. Empty disables the job.
	Schedule string
}

type NotifyConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	EmailTo           string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
	SMSTo             string
}

// EmailEnabled reports whether every SendGrid setting is present.
func (n NotifyConfig) EmailEnabled() bool {
	return n.SendGridAPIKey != "" && n.SendGridFromEmail != "" && n.EmailTo != ""
}

// SMSEnabled reports whether every Twilio setting is present.
func (n NotifyConfig) SMSEnabled() bool {
	return n.TwilioAccountSID != "" && n.TwilioAuthToken != "" && n.TwilioFromNumber != "" && n.SMSTo != ""
}

// Load reads the configuration from the environment. Call godotenv before
// Load to pick up a local .env file.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DatabaseURL: getenv("DATABASE_URL"),
		Server: ServerConfig{
			Port:               withDefault(getenv("PORT"), "8080"),
			CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS")),
		},
		Auth: AuthConfig{
			JWTSecret: getenv("JWT_SECRET"),
			TokenTTL:  time.Hour,
		},
		Logging: LoggingConfig{
			Level:     withDefault(getenv("LOG_LEVEL"), "info"),
			Format:    withDefault(getenv("LOG_FORMAT"), "text"),
			Directory: strings.TrimSpace(getenv("LOG_DIR")),
		},
		Audit: AuditConfig{
			Schedule: withDefault(getenv("HOURS_AUDIT_SCHEDULE"), "0 4 * * *"),
		},
		Notify: NotifyConfig{
			SendGridAPIKey:    getenv("SENDGRID_API_KEY"),
			SendGridFromEmail: getenv("SENDGRID_FROM_EMAIL"),
			SendGridFromName:  getenv("SENDGRID_FROM_NAME"),
			EmailTo:           getenv("NOTIFY_EMAIL_TO"),
			TwilioAccountSID:  getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:   getenv("TWILIO_AUTH_TOKEN"),
			TwilioFromNumber:  getenv("TWILIO_FROM_NUMBER"),
			SMSTo:             getenv("NOTIFY_SMS_TO"),
		},
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	if getenv("HOURS_AUDIT_SCHEDULE") == "off" {
		cfg.Audit.Schedule = ""
	}

	loc, err := time.LoadLocation(withDefault(getenv("APP_TIMEZONE"), "Asia/Tokyo"))
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if raw := getenv("JWT_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("JWT_TTL_MINUTES must be a positive integer, got %q", raw)
		}
		cfg.Auth.TokenTTL = time.Duration(minutes) * time.Minute
	}
	return cfg, nil
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
