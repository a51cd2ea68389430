package session

import "context"

// Repository holds the persisted session pointer. Get returns "" when no
// session is stored.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
