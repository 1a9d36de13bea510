//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/Anastasia-front/contacts-api/internal/domain"
	"github.com/Anastasia-front/contacts-api/internal/platform/postgres"
	"github.com/Anastasia-front/contacts-api/internal/store"
	"github.com/Anastasia-front/contacts-api/internal/testdb"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestContact(
	t *testing.T,
	ctx context.Context,
	tx *sql.Tx,
	owner uuid.UUID,
	name string,
	favorite bool,
) *domain.Contact {
	t.Helper()

	contact, err := domain.NewContact(owner, name, name+"@example.com", "(555) 010-0000", favorite)
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresContactStore(tx, nil).Create(ctx, contact))
	return contact
}

func TestPostgresContactStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		contactStore := postgres.NewPostgresContactStore(tx, nil)
		owner := createTestUser(t, ctx, tx)

		created := createTestContact(t, ctx, tx, owner.ID, "alice", false)

		got, err := contactStore.GetByID(ctx, owner.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Name, got.Name)
		assert.Equal(t, created.Email, got.Email)
		assert.Equal(t, created.Phone, got.Phone)
		assert.Equal(t, owner.ID, got.Owner)
		assert.False(t, got.Favorite)
	})
}

func TestPostgresContactStore_CreateUnknownOwner(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		contact, err := domain.NewContact(uuid.New(), "ghost", "g@example.com", "1", false)
		require.NoError(t, err)

		err = postgres.NewPostgresContactStore(tx, nil).Create(context.Background(), contact)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresContactStore_OwnershipIsolation(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		contactStore := postgres.NewPostgresContactStore(tx, nil)
		owner := createTestUser(t, ctx, tx)
		other := createTestUser(t, ctx, tx)
		contact := createTestContact(t, ctx, tx, owner.ID, "bob", false)

		_, err := contactStore.GetByID(ctx, other.ID, contact.ID)
		assert.ErrorIs(t, err, store.ErrContactNotFound)

		_, err = contactStore.UpdateFavorite(ctx, other.ID, contact.ID, true)
		assert.ErrorIs(t, err, store.ErrContactNotFound)

		_, err = contactStore.Update(ctx, other.ID, contact.ID, store.ContactFields{
			Name: "x", Email: "x@example.com", Phone: "1",
		})
		assert.ErrorIs(t, err, store.ErrContactNotFound)

		assert.ErrorIs(t, contactStore.Delete(ctx, other.ID, contact.ID), store.ErrContactNotFound)

		list, err := contactStore.List(ctx, other.ID, store.ContactFilter{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, list)

		// The owner still sees it untouched.
		got, err := contactStore.GetByID(ctx, owner.ID, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Name)
	})
}

func TestPostgresContactStore_ListPagingAndFilter(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		contactStore := postgres.NewPostgresContactStore(tx, nil)
		owner := createTestUser(t, ctx, tx)

		for i := 0; i < 5; i++ {
			createTestContact(t, ctx, tx, owner.ID, fmt.Sprintf("c%d", i), i%2 == 0)
			time.Sleep(time.Millisecond)
		}

		page1, err := contactStore.List(ctx, owner.ID, store.ContactFilter{Page: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, page1, 2)
		assert.Equal(t, "c0", page1[0].Name)
		assert.Equal(t, owner.ID, page1[0].OwnerInfo.ID)
		assert.Equal(t, owner.Email, page1[0].OwnerInfo.Email)
		assert.Equal(t, domain.SubscriptionStarter, page1[0].OwnerInfo.Subscription)

		page3, err := contactStore.List(ctx, owner.ID, store.ContactFilter{Page: 3, Limit: 2})
		require.NoError(t, err)
		require.Len(t, page3, 1)
		assert.Equal(t, "c4", page3[0].Name)

		favorite := true
		favorites, err := contactStore.List(ctx, owner.ID, store.ContactFilter{Page: 1, Limit: 10, Favorite: &favorite})
		require.NoError(t, err)
		assert.Len(t, favorites, 3)
		for _, c := range favorites {
			assert.True(t, c.Favorite)
		}
	})
}

func TestPostgresContactStore_UpdateAndFavorite(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		contactStore := postgres.NewPostgresContactStore(tx, nil)
		owner := createTestUser(t, ctx, tx)
		contact := createTestContact(t, ctx, tx, owner.ID, "carol", false)

		updated, err := contactStore.Update(ctx, owner.ID, contact.ID, store.ContactFields{
			Name: "Carol", Email: "carol@example.org", Phone: "42",
		})
		require.NoError(t, err)
		assert.Equal(t, "Carol", updated.Name)
		assert.Equal(t, "carol@example.org", updated.Email)
		assert.False(t, updated.Favorite, "nil favorite keeps the stored flag")

		_, err = contactStore.Update(ctx, owner.ID, contact.ID, store.ContactFields{Name: "Carol"})
		assert.True(t, domain.IsValidationError(err))

		for i := 0; i < 2; i++ {
			fav, err := contactStore.UpdateFavorite(ctx, owner.ID, contact.ID, true)
			require.NoError(t, err)
			assert.True(t, fav.Favorite)
		}
	})
}

func TestPostgresContactStore_Delete(t *testing.T) {
	t.Parallel()
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		contactStore := postgres.NewPostgresContactStore(tx, nil)
		owner := createTestUser(t, ctx, tx)
		contact := createTestContact(t, ctx, tx, owner.ID, "dave", false)

		require.NoError(t, contactStore.Delete(ctx, owner.ID, contact.ID))
		assert.ErrorIs(t, contactStore.Delete(ctx, owner.ID, contact.ID), store.ErrContactNotFound)

		_, err := contactStore.GetByID(ctx, owner.ID, contact.ID)
		assert.ErrorIs(t, err, store.ErrContactNotFound)
	})
}
