// Package session stores the signed session token under the "currentUser"
// key of the keyed store.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/store"
)

type KVRepository struct {
	s store.Store
}

var _ Repository = (*KVRepository)(nil)

func NewKVRepository(s store.Store) *KVRepository {
	return &KVRepository{s: s}
}

func (r *KVRepository) Get(ctx context.Context) (string, error) {
	raw, err := r.s.Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return string(raw), nil
}

func (r *KVRepository) Set(ctx context.Context, token string) error {
	if err := r.s.Set(ctx, common.KeyCurrentUser, []byte(token)); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.s.Remove(ctx, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
