package settings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

const (
	byKey      = "key"
	byCategory = "category"
)

type MemoryRepository struct {
	table *memstore.Table[models.Setting]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(
			func(s models.Setting) string { return s.ID },
			memstore.WithIndex(byKey, func(s models.Setting) string { return s.Key }),
			memstore.WithIndex(byCategory, func(s models.Setting) string { return s.Category }),
		),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Setting, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) ListByCategory(_ context.Context, category string) ([]models.Setting, error) {
	return r.table.FilterBy(byCategory, category), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Setting, error) {
	s, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) GetByKey(_ context.Context, key string) (*models.Setting, error) {
	s, ok := r.table.FindBy(byKey, key)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Create(_ context.Context, setting *models.Setting) (*models.Setting, error) {
	s, err := r.table.Insert(*setting)
	if err != nil {
		return nil, fmt.Errorf("insert setting: %w", err)
	}
	return &s, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.Setting) error) (*models.Setting, error) {
	s, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, key string, update func(*models.Setting) error, create func() models.Setting) (*models.Setting, bool, error) {
	s, created, err := r.table.Upsert(byKey, key, update, create)
	if err != nil {
		return nil, false, fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return &s, created, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
