package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capitaoleads/leadstore-go/internal/kv"
	"github.com/capitaoleads/leadstore-go/internal/model"
)

func TestUserRepository(t *testing.T) {
	store := kv.NewMemory()
	repo := NewUserRepository(store)
	ctx := context.Background()

	t.Run("empty store yields empty list", func(t *testing.T) {
		users, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("append persists in order", func(t *testing.T) {
		require.NoError(t, repo.Append(ctx, model.NewUser("Ana", "ana@x.com", "pw1")))
		require.NoError(t, repo.Append(ctx, model.NewUser("Bia", "bia@x.com", "pw2")))

		users, err := repo.All(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "ana@x.com", users[0].Email)
		assert.Equal(t, "bia@x.com", users[1].Email)
	})

	t.Run("find by email is case-sensitive", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Ana", user.Name)

		user, err = repo.FindByEmail(ctx, "ANA@X.COM")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("find by id", func(t *testing.T) {
		users, err := repo.All(ctx)
		require.NoError(t, err)

		user, err := repo.FindByID(ctx, users[0].ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ana@x.com", user.Email)

		user, err = repo.FindByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("corrupted users record falls back to empty list", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, kv.UsersKey, `[{"id": broken`))

		users, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository(kv.NewMemory())
	ctx := context.Background()

	t.Run("absent pointer reads as empty", func(t *testing.T) {
		id, err := repo.CurrentUserID(ctx)
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("set then read", func(t *testing.T) {
		require.NoError(t, repo.SetCurrentUserID(ctx, "u1"))

		id, err := repo.CurrentUserID(ctx)
		require.NoError(t, err)
		assert.Equal(t, "u1", id)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx))
		require.NoError(t, repo.Clear(ctx))

		id, err := repo.CurrentUserID(ctx)
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}
