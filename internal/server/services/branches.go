package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

type BranchService struct {
	repomanager repomanager.RepositoryManager
	deps
}

func (s *BranchService) List(ctx context.Context) ([]models.Branch, error) {
	list, err := s.repomanager.Branches().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	return list, nil
}

func (s *BranchService) Get(ctx context.Context, id string) (*models.Branch, error) {
	b, err := s.repomanager.Branches().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get branch %s: %w", id, err)
	}
	return b, nil
}

// FindByCode returns the earliest branch with the code. Codes are not
// enforced unique.
func (s *BranchService) FindByCode(ctx context.Context, code string) (*models.Branch, error) {
	b, err := s.repomanager.Branches().GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("find branch %s: %w", code, err)
	}
	return b, nil
}

// Create stamps createdAt; isActive defaults to true.
func (s *BranchService) Create(ctx context.Context, in models.BranchInput) (*models.Branch, error) {
	return s.Import(ctx, models.NewBranch(s.newID(), in, s.timestamp()))
}

// Import stores a fully formed branch as is.
func (s *BranchService) Import(ctx context.Context, b models.Branch) (*models.Branch, error) {
	created, err := s.repomanager.Branches().Create(ctx, &b)
	if err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	return created, nil
}

func (s *BranchService) Update(ctx context.Context, id string, patch models.BranchPatch) (*models.Branch, error) {
	b, err := s.repomanager.Branches().Update(ctx, id, func(b *models.Branch) error {
		patch.Apply(b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update branch %s: %w", id, err)
	}
	return b, nil
}

func (s *BranchService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.Branches().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete branch %s: %w", id, err)
	}
	return ok, nil
}
