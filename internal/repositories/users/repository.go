package users

import (
	"context"

	"github.com/dmitrijs2005/letstalk/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Save inserts u or replaces the record with the same ID.
	Save(ctx context.Context, u *models.User) error
}
