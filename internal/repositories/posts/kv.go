// Package posts persists user and welcome posts as one JSON collection under
// the "posts" key. Each post carries its responses inline.
package posts

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

func (r *KVRepository) List(ctx context.Context) ([]*models.Post, error) {
	return kvjson.LoadList[*models.Post](ctx, r.s, r.log, common.KeyPosts)
}

func (r *KVRepository) Get(ctx context.Context, id string) (*models.Post, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(all, id); i >= 0 {
		return all[i], nil
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Prepend(ctx context.Context, p *models.Post) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.write(ctx, append([]*models.Post{p}, all...))
}

func (r *KVRepository) Append(ctx context.Context, ps ...*models.Post) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.write(ctx, append(all, ps...))
}

func (r *KVRepository) Save(ctx context.Context, p *models.Post) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(all, p.ID)
	if i < 0 {
		return common.ErrorNotFound
	}
	all[i] = p
	return r.write(ctx, all)
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	i := indexOf(all, id)
	if i < 0 {
		return common.ErrorNotFound
	}
	return r.write(ctx, slices.Delete(all, i, i+1))
}

func (r *KVRepository) write(ctx context.Context, all []*models.Post) error {
	return kvjson.SaveList(ctx, r.s, common.KeyPosts, all)
}

func indexOf(all []*models.Post, id string) int {
	return slices.IndexFunc(all, func(p *models.Post) bool { return p.ID == id })
}
