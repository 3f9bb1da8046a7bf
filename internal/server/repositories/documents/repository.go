package documents

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

// Repository stores document metadata only; file contents live elsewhere.
type Repository interface {
	List(ctx context.Context) ([]models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) (*models.Document, error)
	Update(ctx context.Context, id string, fn func(*models.Document) error) (*models.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
}
