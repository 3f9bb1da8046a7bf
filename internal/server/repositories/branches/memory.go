package branches

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

const byCode = "code"

type MemoryRepository struct {
	table *memstore.Table[models.Branch]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(
			func(b models.Branch) string { return b.ID },
			memstore.WithIndex(byCode, func(b models.Branch) string { return b.Code }),
			memstore.WithClone(models.Branch.Clone),
		),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Branch, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Branch, error) {
	b, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &b, nil
}

func (r *MemoryRepository) GetByCode(_ context.Context, code string) (*models.Branch, error) {
	b, ok := r.table.FindBy(byCode, code)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &b, nil
}

func (r *MemoryRepository) Create(_ context.Context, branch *models.Branch) (*models.Branch, error) {
	b, err := r.table.Insert(*branch)
	if err != nil {
		return nil, fmt.Errorf("insert branch: %w", err)
	}
	return &b, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.Branch) error) (*models.Branch, error) {
	b, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
