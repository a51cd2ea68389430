package repomanager

import (
	"github.com/dmitrijs2005/letstalk/internal/repositories/posts"
	"github.com/dmitrijs2005/letstalk/internal/repositories/requests"
	"github.com/dmitrijs2005/letstalk/internal/repositories/session"
	"github.com/dmitrijs2005/letstalk/internal/repositories/users"
	"github.com/dmitrijs2005/letstalk/internal/store"
)

// RepositoryManager vends repositories bound to a store. Services pass the
// batch store handed to them by store.RunBatch so grouped writes commit
// together.
type RepositoryManager interface {
	Users(s store.Store) users.Repository
	Posts(s store.Store) posts.Repository
	Requests(s store.Store) requests.Repository
	Session(s store.Store) session.Repository
}
