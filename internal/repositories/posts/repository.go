package posts

import (
	"context"

	"github.com/dmitrijs2005/letstalk/internal/models"
)

// Repository keeps posts newest first.
type Repository interface {
	List(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	// Prepend places p at the head of the collection.
	Prepend(ctx context.Context, p *models.Post) error
	// Append places ps at the tail, after every existing post.
	Append(ctx context.Context, ps ...*models.Post) error
	// Save replaces the stored post with the same ID in place.
	Save(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
}
