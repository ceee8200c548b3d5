package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

func TestMemoryRepository_AddAndFind(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Add(ctx, "bob@dylan.com", []byte("digest"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Nil(t, u.SessionID)

	found, err := repo.FindByEmail(ctx, "bob@dylan.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", byID.Email)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Add(ctx, "bob@dylan.com", []byte("digest"))
	require.NoError(t, err)

	_, err = repo.Add(ctx, "bob@dylan.com", []byte("other"))
	assert.ErrorIs(t, err, common.ErrorAlreadyRegistered)
}

func TestMemoryRepository_SessionLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Add(ctx, "bob@dylan.com", []byte("digest"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateSessionID(ctx, u.ID, "token-1"))

	found, err := repo.FindBySessionID(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	// overwriting invalidates the previous token
	require.NoError(t, repo.UpdateSessionID(ctx, u.ID, "token-2"))
	_, err = repo.FindBySessionID(ctx, "token-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.ClearSessionID(ctx, u.ID))
	_, err = repo.FindBySessionID(ctx, "token-2")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_UnknownUser(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, repo.UpdateSessionID(ctx, 404, "t"), common.ErrorNotFound)
	assert.ErrorIs(t, repo.ClearSessionID(ctx, 404), common.ErrorNotFound)
}

func TestMemoryRepository_ReturnsDetachedCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Add(ctx, "bob@dylan.com", []byte("digest"))
	require.NoError(t, err)

	u.Email = "mutated@dylan.com"
	u.HashedPassword[0] = 'X'

	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", stored.Email)
	assert.Equal(t, []byte("digest"), stored.HashedPassword)
}
