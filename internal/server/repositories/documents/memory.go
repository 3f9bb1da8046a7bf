package documents

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

type MemoryRepository struct {
	table *memstore.Table[models.Document]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(func(d models.Document) string { return d.ID }),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Document, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Document, error) {
	d, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &d, nil
}

func (r *MemoryRepository) Create(_ context.Context, doc *models.Document) (*models.Document, error) {
	d, err := r.table.Insert(*doc)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return &d, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.Document) error) (*models.Document, error) {
	d, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
