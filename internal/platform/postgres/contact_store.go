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

const contactColumns = `id, owner, name, email, phone, favorite, created_at, updated_at`

// PostgresContactStore implements the store.ContactStore interface
// using a PostgreSQL database as the storage backend.
//
// Every statement filters on the owner column, so a contact that belongs to
// another user is indistinguishable from one that does not exist.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresContactStore creates a new PostgreSQL implementation of the ContactStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Ensure PostgresContactStore implements store.ContactStore interface
var _ store.ContactStore = (*PostgresContactStore)(nil)

func scanContact(row rowScanner, extra ...any) (*domain.Contact, error) {
	var c domain.Contact
	dest := append([]any{
		&c.ID,
		&c.Owner,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Favorite,
		&c.CreatedAt,
		&c.UpdatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.ContactStore.Create.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := contact.Validate(); err != nil {
		log.Warn("contact validation failed during create",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (`+contactColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		contact.ID,
		contact.Owner,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Favorite,
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during contact creation",
				slog.String("contact_id", contact.ID.String()),
				slog.String("owner", contact.Owner.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, contact.Owner)
		}
		log.Error("failed to create contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", contact.ID.String()))
		return MapError(err)
	}

	log.Info("contact created successfully",
		slog.String("contact_id", contact.ID.String()),
		slog.String("owner", contact.Owner.String()))
	return nil
}

// GetByID implements store.ContactStore.GetByID
func (s *PostgresContactStore) GetByID(ctx context.Context, owner, id uuid.UUID) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := scanContact(s.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1 AND owner = $2`, id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to get contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, MapError(err)
	}

	return contact, nil
}

// List implements store.ContactStore.List.
// Contacts are ordered by creation time so pages are stable.
func (s *PostgresContactStore) List(
	ctx context.Context,
	owner uuid.UUID,
	filter store.ContactFilter,
) ([]store.ContactWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.owner, c.name, c.email, c.phone, c.favorite, c.created_at, c.updated_at,
			u.id, u.email, u.subscription
		FROM contacts c
		JOIN users u ON u.id = c.owner
		WHERE c.owner = $1 AND ($2::boolean IS NULL OR c.favorite = $2)
		ORDER BY c.created_at, c.id
		LIMIT $3 OFFSET $4
	`, owner, filter.Favorite, filter.Limit, filter.Offset())
	if err != nil {
		log.Error("failed to list contacts",
			slog.String("error", err.Error()),
			slog.String("owner", owner.String()))
		return nil, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	contacts := make([]store.ContactWithOwner, 0, filter.Limit)
	for rows.Next() {
		var summary store.OwnerSummary
		var subscription string

		contact, err := scanContact(rows, &summary.ID, &summary.Email, &subscription)
		if err != nil {
			log.Error("failed to scan contact row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		summary.Subscription = domain.Subscription(subscription)

		contacts = append(contacts, store.ContactWithOwner{Contact: *contact, OwnerInfo: summary})
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating contact rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("contacts listed",
		slog.String("owner", owner.String()),
		slog.Int("count", len(contacts)),
		slog.Int("page", filter.Page))
	return contacts, nil
}

// Update implements store.ContactStore.Update.
// A nil Favorite keeps the stored flag.
func (s *PostgresContactStore) Update(
	ctx context.Context,
	owner, id uuid.UUID,
	fields store.ContactFields,
) (*domain.Contact, error) {
	probe := domain.Contact{
		ID:    id,
		Owner: owner,
		Name:  fields.Name,
		Email: fields.Email,
		Phone: fields.Phone,
	}
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	return s.updateReturning(ctx, id, `
		UPDATE contacts
		SET name = $1, email = $2, phone = $3, favorite = COALESCE($4, favorite), updated_at = $5
		WHERE id = $6 AND owner = $7
		RETURNING `+contactColumns,
		fields.Name, fields.Email, fields.Phone, fields.Favorite, time.Now().UTC(), id, owner)
}

// UpdateFavorite implements store.ContactStore.UpdateFavorite
func (s *PostgresContactStore) UpdateFavorite(
	ctx context.Context,
	owner, id uuid.UUID,
	favorite bool,
) (*domain.Contact, error) {
	return s.updateReturning(ctx, id, `
		UPDATE contacts SET favorite = $1, updated_at = $2
		WHERE id = $3 AND owner = $4
		RETURNING `+contactColumns,
		favorite, time.Now().UTC(), id, owner)
}

func (s *PostgresContactStore) updateReturning(
	ctx context.Context,
	id uuid.UUID,
	query string,
	args ...any,
) (*domain.Contact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	contact, err := scanContact(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("contact not found for update", slog.String("contact_id", id.String()))
			return nil, store.ErrContactNotFound
		}
		log.Error("failed to update contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return nil, MapError(err)
	}

	log.Info("contact updated successfully", slog.String("contact_id", id.String()))
	return contact, nil
}

// Delete implements store.ContactStore.Delete
func (s *PostgresContactStore) Delete(ctx context.Context, owner, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = $1 AND owner = $2`, id, owner)
	if err != nil {
		log.Error("failed to delete contact",
			slog.String("error", err.Error()),
			slog.String("contact_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrContactNotFound); err != nil {
		log.Debug("contact not found for delete", slog.String("contact_id", id.String()))
		return err
	}

	log.Info("contact deleted successfully", slog.String("contact_id", id.String()))
	return nil
}
