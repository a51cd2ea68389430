package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/letstalk/internal/config"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/letstalk/internal/store"
	"github.com/dmitrijs2005/letstalk/internal/timex"
	"github.com/stretchr/testify/require"
)

const hikingPost = "I love hiking in the mountains every weekend"

type testEnv struct {
	store    store.Store
	clock    *timex.FixedClock
	accounts *AccountService
	ledger   *LedgerService
	graph    *GraphService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, store.NewMemoryStore())
}

func newTestEnvWithStore(t *testing.T, s store.Store) *testEnv {
	t.Helper()
	clock := &timex.FixedClock{T: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	cfg := &config.Config{SessionSecret: "test-secret", SessionValidity: time.Hour}
	rm := repomanager.NewKVRepositoryManager(logging.Nop())
	log := logging.Nop()

	return &testEnv{
		store:    s,
		clock:    clock,
		accounts: NewAccountService(s, rm, cfg, clock, log),
		ledger:   NewLedgerService(s, rm, clock, log),
		graph:    NewGraphService(s, rm, clock, log),
	}
}

func (e *testEnv) signup(t *testing.T, name, email string) *models.Session {
	t.Helper()
	u, err := e.accounts.Signup(context.Background(), name, email, "secret123", "")
	require.NoError(t, err)
	return &models.Session{UserID: u.ID, Email: u.Email}
}

func (e *testEnv) user(t *testing.T, sess *models.Session) *models.User {
	t.Helper()
	u, err := e.accounts.User(context.Background(), sess.UserID)
	require.NoError(t, err)
	return u
}

func (e *testEnv) setCredits(t *testing.T, sess *models.Session, n int) {
	t.Helper()
	u := e.user(t, sess)
	u.ResponseCredits = n
	require.NoError(t, e.accounts.Save(context.Background(), u))
}

func (e *testEnv) befriend(t *testing.T, a, b *models.Session) {
	t.Helper()
	ctx := context.Background()
	fr, err := e.graph.SendRequest(ctx, a, b.Email)
	require.NoError(t, err)
	require.NoError(t, e.graph.AcceptRequest(ctx, b, fr.ID))
}
