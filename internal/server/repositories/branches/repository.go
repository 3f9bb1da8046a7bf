package branches

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Branch, error)
	Get(ctx context.Context, id string) (*models.Branch, error)
	// GetByCode returns the earliest stored branch with the given code.
	GetByCode(ctx context.Context, code string) (*models.Branch, error)
	Create(ctx context.Context, branch *models.Branch) (*models.Branch, error)
	Update(ctx context.Context, id string, fn func(*models.Branch) error) (*models.Branch, error)
	Delete(ctx context.Context, id string) (bool, error)
}
