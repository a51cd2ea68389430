package requests

import (
	"context"

	"github.com/dmitrijs2005/letstalk/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.FriendRequest, error)
	Get(ctx context.Context, id string) (*models.FriendRequest, error)
	Create(ctx context.Context, fr *models.FriendRequest) error
	Delete(ctx context.Context, id string) error
}
