package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

type SchemeService struct {
	repomanager repomanager.RepositoryManager
	deps
}

func (s *SchemeService) List(ctx context.Context) ([]models.Scheme, error) {
	list, err := s.repomanager.Schemes().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	return list, nil
}

func (s *SchemeService) Get(ctx context.Context, id string) (*models.Scheme, error) {
	sc, err := s.repomanager.Schemes().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get scheme %s: %w", id, err)
	}
	return sc, nil
}

// Create stamps createdAt and stores the scheme with status defaulting to
// active.
func (s *SchemeService) Create(ctx context.Context, in models.SchemeInput) (*models.Scheme, error) {
	return s.Import(ctx, models.NewScheme(s.newID(), in, s.timestamp()))
}

// Import stores a fully formed scheme as is.
func (s *SchemeService) Import(ctx context.Context, sc models.Scheme) (*models.Scheme, error) {
	created, err := s.repomanager.Schemes().Create(ctx, &sc)
	if err != nil {
		return nil, fmt.Errorf("create scheme: %w", err)
	}
	return created, nil
}

func (s *SchemeService) Update(ctx context.Context, id string, patch models.SchemePatch) (*models.Scheme, error) {
	sc, err := s.repomanager.Schemes().Update(ctx, id, func(sc *models.Scheme) error {
		patch.Apply(sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update scheme %s: %w", id, err)
	}
	return sc, nil
}

func (s *SchemeService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.Schemes().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete scheme %s: %w", id, err)
	}
	return ok, nil
}
