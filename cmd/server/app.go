package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Anastasia-front/contacts-api/internal/config"
	"github.com/Anastasia-front/contacts-api/internal/platform/mail"
	"github.com/Anastasia-front/contacts-api/internal/platform/postgres"
	"github.com/Anastasia-front/contacts-api/internal/platform/storage"
	"github.com/Anastasia-front/contacts-api/internal/service/auth"
	"github.com/Anastasia-front/contacts-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	contactStore store.ContactStore

	// Service interfaces
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	mailer           mail.Sender
	avatars          storage.AvatarStorage
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	passwords := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)
	app.passwordHasher = passwords
	app.passwordVerifier = passwords

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.contactStore = postgres.NewPostgresContactStore(db, logger)

	app.mailer, err = mail.New(cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}

	app.avatars, err = storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize avatar storage: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
