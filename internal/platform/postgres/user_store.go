package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/platform/logger"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, name, subscription, token,
		avatar_url, verify, verification_token, created_at, updated_at`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var subscription string

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.Name,
		&subscription,
		&user.Token,
		&user.AvatarURL,
		&user.Verify,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Subscription = domain.Subscription(subscription)
	return &user, nil
}

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists if the email is already registered.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: password must be hashed before storing", store.ErrInvalidEntity)
	}

	query := `
		INSERT INTO users (id, email, password_hash, name, subscription, token,
			avatar_url, verify, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.Name,
		string(user.Subscription),
		user.Token,
		user.AvatarURL,
		user.Verify,
		user.VerificationToken,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("attempted to create user with existing email",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	// The plaintext never outlives the insert.
	user.Password = ""

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByVerificationToken implements store.UserStore.GetByVerificationToken.
// A consumed token is stored as the empty string and never matches.
func (s *PostgresUserStore) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	return s.getOne(ctx, "verification_token",
		`SELECT `+userColumns+` FROM users WHERE verification_token = $1`, token)
}

func (s *PostgresUserStore) getOne(ctx context.Context, by, query string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("lookup", by))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.String("lookup", by))
		return nil, MapError(err)
	}

	return user, nil
}

// SetToken implements store.UserStore.SetToken
func (s *PostgresUserStore) SetToken(ctx context.Context, id uuid.UUID, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET token = $1, updated_at = $2 WHERE id = $3`,
		token, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to set user token",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Debug("user token updated",
		slog.String("user_id", id.String()),
		slog.Bool("cleared", token == ""))
	return nil
}

// MarkVerified implements store.UserStore.MarkVerified
func (s *PostgresUserStore) MarkVerified(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET verify = TRUE, verification_token = '', updated_at = $1
		WHERE id = $2
	`, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to mark user verified",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user email verified", slog.String("user_id", id.String()))
	return nil
}

// UpdateSubscription implements store.UserStore.UpdateSubscription
func (s *PostgresUserStore) UpdateSubscription(
	ctx context.Context,
	id uuid.UUID,
	subscription domain.Subscription,
) (*domain.User, error) {
	if !subscription.Valid() {
		return nil, domain.NewValidationError("subscription", "is not a known tier", domain.ErrInvalidSubscription)
	}

	return s.updateReturning(ctx, "subscription", `
		UPDATE users SET subscription = $1, updated_at = $2
		WHERE id = $3
		RETURNING `+userColumns, string(subscription), time.Now().UTC(), id)
}

// UpdateAvatar implements store.UserStore.UpdateAvatar
func (s *PostgresUserStore) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) (*domain.User, error) {
	return s.updateReturning(ctx, "avatar", `
		UPDATE users SET avatar_url = $1, updated_at = $2
		WHERE id = $3
		RETURNING `+userColumns, avatarURL, time.Now().UTC(), id)
}

func (s *PostgresUserStore) updateReturning(
	ctx context.Context,
	field, query string,
	args ...any,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("field", field))
		return nil, MapError(err)
	}

	log.Info("user updated",
		slog.String("user_id", user.ID.String()),
		slog.String("field", field))
	return user, nil
}
