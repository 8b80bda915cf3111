// Command seed creates the schema, loads shops from a YAML file into an empty
// shops table and optionally creates the first admin.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"ramenmap/internal/config"
	"ramenmap/internal/logging"
	"ramenmap/internal/repository"
	"ramenmap/internal/service"
)

func main() {
	file := flag.String("file", "seed.yaml", "YAML file with a top-level shops list")
	adminEmail := flag.String("admin-email", "", "create an admin with this email")
	adminPassword := flag.String("admin-password", "", "password for -admin-email")
	flag.Parse()

	if err := godotenv.Overload(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.New(os.Stdout, logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}))

	if err := run(context.Background(), cfg, *file, *adminEmail, *adminPassword); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, file, adminEmail, adminPassword string) error {
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

	if file != "" {
		seedFile, err := service.LoadSeedFile(file)
		if err != nil {
			return err
		}
		shops := repository.NewShopRepository(conn)
		inserted, err := service.NewSeedService(shops).Seed(ctx, seedFile)
		if err != nil {
			return err
		}
		if inserted == 0 {
			existing, err := shops.CountShops(ctx)
			if err != nil {
				return err
			}
			slog.Info("shops table already has data; nothing inserted", slog.Int("existing", existing))
		} else {
			slog.Info("seeded shops", slog.Int("count", inserted), slog.String("file", file))
		}
	}

	if adminEmail != "" {
		authSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository(conn), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err := authSvc.CreateAdmin(ctx, adminEmail, adminPassword); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		slog.Info("admin created", slog.String("email", adminEmail))
	}
	return nil
}
