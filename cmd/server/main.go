// Package main implements the entry point for the contacts API server,
// which manages user accounts and each user's private address book.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anastasia-front/contacts-api/internal/config"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/platform/postgres"
	"github.com/joho/godotenv"
)

// main wires configuration, logging, the database and the HTTP server.
// With -migrate it runs the given goose command and exits instead.
func main() {
	configPath := flag.String("config", "", "Path to a config file (default: ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *migrateCmd); err != nil {
		log.Fatalf("contacts-api: %v", err)
	}
}

func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("mail_driver", cfg.Mail.Driver))

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("Error closing database connection", "error", err)
			}
		}()
		return postgres.Migrate(ctx, db, migrateCmd, appLogger)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, "up", appLogger); err != nil {
			_ = db.Close()
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
