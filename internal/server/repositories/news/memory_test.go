package news

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_UpdateAbortLeavesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, &models.News{ID: "n-1", Title: "Hello"})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "n-1", func(n *models.News) error {
		n.Title = "Changed"
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "n-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	_, err := NewMemoryRepository().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
