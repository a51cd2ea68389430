// Package repomanager wires the JSON-collection repositories to a keyed store.
package repomanager

import (
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/repositories/posts"
	"github.com/dmitrijs2005/letstalk/internal/repositories/requests"
	"github.com/dmitrijs2005/letstalk/internal/repositories/session"
	"github.com/dmitrijs2005/letstalk/internal/repositories/users"
	"github.com/dmitrijs2005/letstalk/internal/store"
)

// KVRepositoryManager builds KV-backed repositories sharing one logger.
type KVRepositoryManager struct {
	log logging.Logger
}

func NewKVRepositoryManager(log logging.Logger) *KVRepositoryManager {
	if log == nil {
		log = logging.Nop()
	}
	return &KVRepositoryManager{log: log}
}

func (m *KVRepositoryManager) Users(s store.Store) users.Repository {
	return users.NewKVRepository(s, m.log.With("collection", "users"))
}

func (m *KVRepositoryManager) Posts(s store.Store) posts.Repository {
	return posts.NewKVRepository(s, m.log.With("collection", "posts"))
}

func (m *KVRepositoryManager) Requests(s store.Store) requests.Repository {
	return requests.NewKVRepository(s, m.log.With("collection", "friendRequests"))
}

func (m *KVRepositoryManager) Session(s store.Store) session.Repository {
	return session.NewKVRepository(s)
}
