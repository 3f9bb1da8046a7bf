package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

type NewsService struct {
	repomanager repomanager.RepositoryManager
	deps
}

// List returns news newest first. Items published at the same instant keep
// their insertion order.
func (s *NewsService) List(ctx context.Context) ([]models.News, error) {
	list, err := s.repomanager.News().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	slices.SortStableFunc(list, func(a, b models.News) int {
		return b.PublishDate.Compare(a.PublishDate)
	})
	return list, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*models.News, error) {
	n, err := s.repomanager.News().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news %s: %w", id, err)
	}
	return n, nil
}

// Create sets publishDate to now; the status defaults to published.
func (s *NewsService) Create(ctx context.Context, in models.NewsInput) (*models.News, error) {
	return s.Import(ctx, models.NewNews(s.newID(), in, s.timestamp()))
}

// Import stores a fully formed news item as is, keeping its publishDate.
func (s *NewsService) Import(ctx context.Context, n models.News) (*models.News, error) {
	created, err := s.repomanager.News().Create(ctx, &n)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return created, nil
}

func (s *NewsService) Update(ctx context.Context, id string, patch models.NewsPatch) (*models.News, error) {
	n, err := s.repomanager.News().Update(ctx, id, func(n *models.News) error {
		patch.Apply(n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update news %s: %w", id, err)
	}
	return n, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.News().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete news %s: %w", id, err)
	}
	return ok, nil
}
