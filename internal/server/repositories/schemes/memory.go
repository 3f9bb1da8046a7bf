package schemes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/memstore"
)

// MemoryRepository keeps schemes in process memory. Records are cloned on
// the way in and out so callers never share the nullable amount pointers.
type MemoryRepository struct {
	table *memstore.Table[models.Scheme]
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		table: memstore.NewTable(
			func(s models.Scheme) string { return s.ID },
			memstore.WithClone(models.Scheme.Clone),
		),
	}
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Scheme, error) {
	return r.table.All(), nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*models.Scheme, error) {
	s, ok := r.table.Get(id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Create(_ context.Context, scheme *models.Scheme) (*models.Scheme, error) {
	s, err := r.table.Insert(*scheme)
	if err != nil {
		return nil, fmt.Errorf("insert scheme: %w", err)
	}
	return &s, nil
}

func (r *MemoryRepository) Update(_ context.Context, id string, fn func(*models.Scheme) error) (*models.Scheme, error) {
	s, err := r.table.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.table.Delete(id), nil
}
