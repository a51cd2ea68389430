// Package requests persists pending friend requests under the
// "friendRequests" key of the keyed store.
package requests

import (
	"context"
	"slices"

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

func (r *KVRepository) List(ctx context.Context) ([]*models.FriendRequest, error) {
	return kvjson.LoadList[*models.FriendRequest](ctx, r.s, r.log, common.KeyFriendRequests)
}

func (r *KVRepository) Get(ctx context.Context, id string) (*models.FriendRequest, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, fr := range all {
		if fr.ID == id {
			return fr, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Create(ctx context.Context, fr *models.FriendRequest) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	return kvjson.SaveList(ctx, r.s, common.KeyFriendRequests, append(all, fr))
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(all, func(fr *models.FriendRequest) bool { return fr.ID == id })
	if i < 0 {
		return common.ErrorNotFound
	}
	return kvjson.SaveList(ctx, r.s, common.KeyFriendRequests, slices.Delete(all, i, i+1))
}
