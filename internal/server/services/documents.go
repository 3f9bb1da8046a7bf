package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

type DocumentService struct {
	repomanager repomanager.RepositoryManager
	deps
}

func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	list, err := s.repomanager.Documents().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return list, nil
}

func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	d, err := s.repomanager.Documents().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	return d, nil
}

func (s *DocumentService) Create(ctx context.Context, in models.DocumentInput) (*models.Document, error) {
	doc := models.NewDocument(s.newID(), in, s.timestamp())
	created, err := s.repomanager.Documents().Create(ctx, &doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return created, nil
}

func (s *DocumentService) Update(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error) {
	d, err := s.repomanager.Documents().Update(ctx, id, func(d *models.Document) error {
		patch.Apply(d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update document %s: %w", id, err)
	}
	return d, nil
}

func (s *DocumentService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.Documents().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete document %s: %w", id, err)
	}
	return ok, nil
}
