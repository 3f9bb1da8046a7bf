package news

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.News, error)
	Get(ctx context.Context, id string) (*models.News, error)
	Create(ctx context.Context, item *models.News) (*models.News, error)
	Update(ctx context.Context, id string, fn func(*models.News) error) (*models.News, error)
	Delete(ctx context.Context, id string) (bool, error)
}
