package users

import (
	"context"

	"github.com/dmitrijs2005/bankportal/internal/server/models"
)

// Repository stores back-office users. Lookups of missing records return
// common.ErrorNotFound.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetUserByLogin(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
