package schemes

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Scheme, error)
	Get(ctx context.Context, id string) (*models.Scheme, error)
	Create(ctx context.Context, scheme *models.Scheme) (*models.Scheme, error)
	Update(ctx context.Context, id string, fn func(*models.Scheme) error) (*models.Scheme, error)
	Delete(ctx context.Context, id string) (bool, error)
}
