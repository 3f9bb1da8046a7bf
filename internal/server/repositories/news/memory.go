package news

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

// MemoryRepository returns news in insertion order; ordering by publish
// date is the service's job.
type MemoryRepository struct {
	table *memstore.Table[models.News]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(func(n models.News) string { return n.ID }),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.News, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.News, error) {
	n, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &n, nil
}

func (r *MemoryRepository) Create(_ context.Context, item *models.News) (*models.News, error) {
	n, err := r.table.Insert(*item)
	if err != nil {
		return nil, fmt.Errorf("insert news: %w", err)
	}
	return &n, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.News) error) (*models.News, error) {
	n, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
