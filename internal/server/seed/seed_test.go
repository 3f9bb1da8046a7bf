package seed

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/logging"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bankportal/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newStorage(t *testing.T) *services.Storage {
	t.Helper()
	return services.NewStorage(repomanager.NewInMemoryRepositoryManager(),
		services.WithHasher(cryptox.NewBcryptHasher(bcrypt.MinCost)))
}

func TestLoad_Defaults(t *testing.T) {
	ctx := context.Background()
	st := newStorage(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Load(ctx, st, Admin{}, now, logging.Nop{}))

	admin, err := st.Users.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminID, admin.ID)
	assert.NotEqual(t, "admin123", admin.Password)

	schemeList, err := st.Schemes.List(ctx)
	require.NoError(t, err)
	require.Len(t, schemeList, 4)
	assert.Equal(t, "scheme-1", schemeList[0].ID)
	assert.Equal(t, now, schemeList[0].CreatedAt)

	newsList, err := st.News.List(ctx)
	require.NoError(t, err)
	require.Len(t, newsList, 3)
	assert.Equal(t, "2023-12-15", newsList[0].PublishDate.Format(time.DateOnly))
	assert.Equal(t, "2023-12-12", newsList[1].PublishDate.Format(time.DateOnly))
	assert.Equal(t, "2023-12-10", newsList[2].PublishDate.Format(time.DateOnly))

	dashboard, err := st.Settings.ListByCategory(ctx, "dashboard")
	require.NoError(t, err)
	assert.Len(t, dashboard, 4)

	name, err := st.Settings.FindByKey(ctx, "bank_name")
	require.NoError(t, err)
	assert.Equal(t, "Unity Banking", name.Value)

	b, err := st.Branches.FindByCode(ctx, "UB002")
	require.NoError(t, err)
	assert.Equal(t, "branch-2", b.ID)

	docs, err := st.Documents.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoad_CustomAdminHash(t *testing.T) {
	ctx := context.Background()
	st := newStorage(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	require.NoError(t, Load(ctx, st, Admin{Username: "root", Password: string(hash)}, time.Now(), logging.Nop{}))

	u, err := st.Users.Authenticate(ctx, "root", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, string(hash), u.Password)

	_, err = st.Users.Authenticate(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLoad_Twice(t *testing.T) {
	ctx := context.Background()
	st := newStorage(t)

	require.NoError(t, Load(ctx, st, Admin{}, time.Now(), logging.Nop{}))
	err := Load(ctx, st, Admin{}, time.Now(), logging.Nop{})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}
