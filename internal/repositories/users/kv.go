// Package users persists account records as a single JSON collection under
// the "users" key of the keyed store.
package users

import (
	"context"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/repositories/kvjson"
	"github.com/dmitrijs2005/letstalk/internal/store"
)

type KVRepository struct {
	s   store.Store
	log logging.Logger
}

var _ Repository = (*KVRepository)(nil)

func NewKVRepository(s store.Store, log logging.Logger) *KVRepository {
	return &KVRepository{s: s, log: log}
}

func (r *KVRepository) List(ctx context.Context) ([]*models.User, error) {
	return kvjson.LoadList[*models.User](ctx, r.s, r.log, common.KeyUsers)
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// GetByEmail matches the stored email exactly.
func (r *KVRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Save(ctx context.Context, u *models.User) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range all {
		if existing.ID == u.ID {
			all[i] = u
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, u)
	}
	return kvjson.SaveList(ctx, r.s, common.KeyUsers, all)
}
