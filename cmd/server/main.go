package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"ramenmap/internal/api"
	"ramenmap/internal/auth"
	"ramenmap/internal/config"
	"ramenmap/internal/hours"
	"ramenmap/internal/logging"
	"ramenmap/internal/repository"
	"ramenmap/internal/service"
	"ramenmap/internal/templates"
)

func main() {
	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	if err := run(cfg, logger); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer conn.Close()
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := repository.Migrate(ctx, conn); err != nil {
		return err
	}

	pages, err := templates.Parse()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set; admin routes will reject every request")
	}

	shopRepo := repository.NewShopRepository(conn)
	shopSvc := service.NewShopService(shopRepo, hours.NewEvaluator(hours.WithCalendar(hours.JapaneseCalendar{})), cfg.Location, nil)
	authSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository(conn), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	jobSvc := service.NewJobService(shopRepo, repository.NewJobRepository(conn), notifier(cfg.Notify))

	router := api.NewRouter(api.Routes{
		Shops:               api.NewShopHandler(shopSvc),
		Admin:               api.NewAdminHandler(shopSvc, jobSvc, pages),
		AdminAuth:           api.NewAdminAuthHandler(authSvc, pages, cfg.Auth.TokenTTL),
		Pages:               api.NewPageHandler(shopSvc, pages),
		AdminAuthMiddleware: auth.NewAdminAuthMiddleware(cfg.Auth.JWTSecret),
	})

	var h http.Handler = router
	if len(cfg.Server.CORSAllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedOrigins(cfg.Server.CORSAllowedOrigins),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(h)
	}
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(logging.PrintlnLogger{Logger: logger}))(h)
	h = handlers.CustomLoggingHandler(io.Discard, h, api.AccessLogFormatter(logger))

	scheduler := cron.New(cron.WithLocation(cfg.Location))
	if cfg.Audit.Schedule != "" {
		_, err := scheduler.AddFunc(cfg.Audit.Schedule, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := jobSvc.AuditOpeningHours(jobCtx); err != nil {
				slog.Error("hours audit failed", slog.Any("error", err))
			}
		})
		if err != nil {
			return fmt.Errorf("HOURS_AUDIT_SCHEDULE: %w", err)
		}
		slog.Info("hours audit scheduled", slog.String("schedule", cfg.Audit.Schedule))
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", slog.String("port", cfg.Server.Port), slog.String("timezone", cfg.Location.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		<-scheduler.Stop().Done()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	<-scheduler.Stop().Done()
	return srv.Shutdown(shutdownCtx)
}

func notifier(cfg config.NotifyConfig) service.Notifier {
	var m service.MultiNotifier
	if cfg.EmailEnabled() {
		m = append(m, service.NewSendGridNotifier(cfg.SendGridAPIKey, cfg.SendGridFromEmail, cfg.SendGridFromName, cfg.EmailTo))
	}
	if cfg.SMSEnabled() {
		m = append(m, service.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.SMSTo))
	}
	return m
}

// setupLogging returns a nil file when no log directory is configured.
func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	var writer io.Writer = os.Stdout
	var file *os.File
	if cfg.Directory != "" {
		if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		fileName := filepath.Join(cfg.Directory, time.Now().UTC().Format("2006-01-02")+".log")
		f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		file = f
		writer = io.MultiWriter(os.Stdout, f)
	}

	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
