package settings

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Setting, error)
	ListByCategory(ctx context.Context, category string) ([]models.Setting, error)
	Get(ctx context.Context, id string) (*models.Setting, error)
	GetByKey(ctx context.Context, key string) (*models.Setting, error)
	Create(ctx context.Context, setting *models.Setting) (*models.Setting, error)
	Update(ctx context.Context, id string, fn func(*models.Setting) error) (*models.Setting, error)
	// Upsert applies update to the setting holding key, or stores the
	// result of create when there is none. Lookup and write happen
	// atomically.
	Upsert(ctx context.Context, key string, update func(*models.Setting) error, create func() models.Setting) (*models.Setting, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
