package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

const byUsername = "username"

type MemoryRepository struct {
	table *memstore.Table[models.User]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(
			func(u models.User) string { return u.ID },
			memstore.WithIndex(byUsername, func(u models.User) string { return u.Username }),
		),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.User, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.User, error) {
	u, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) GetUserByLogin(_ context.Context, username string) (*models.User, error) {
	u, ok := r.table.FindBy(byUsername, username)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	u, err := r.table.Insert(*user)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.User) error) (*models.User, error) {
	u, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
