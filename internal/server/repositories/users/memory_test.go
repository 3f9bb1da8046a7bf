package users

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, &models.User{ID: "u-1", Username: "alice", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)

	got, err := repo.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	updated, err := repo.Update(ctx, "u-1", func(u *models.User) error {
		u.Username = "alice2"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)

	_, err = repo.GetUserByLogin(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	ok, err := repo.Delete(ctx, "u-1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.Get(ctx, "u-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_CreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", Username: "a"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u-1", Username: "b"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Update(context.Background(), "ghost", func(*models.User) error { return nil })
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
