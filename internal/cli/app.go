package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/letstalk/internal/common"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/models"
	"github.com/dmitrijs2005/letstalk/internal/services"
	"github.com/dmitrijs2005/letstalk/internal/timex"
)

// errOnboarding is returned by member-only commands before the user has
// answered a welcome post.
var errOnboarding = errors.New("respond to a welcome post first (type 'welcome')")

type App struct {
	accounts *services.AccountService
	ledger   *services.LedgerService
	graph    *services.GraphService
	clock    timex.Clock
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	session  *models.Session
	userName string
}

func NewApp(accounts *services.AccountService, ledger *services.LedgerService, graph *services.GraphService,
	clock timex.Clock, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		accounts: accounts,
		ledger:   ledger,
		graph:    graph,
		clock:    clock,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run seeds the welcome posts, resumes a persisted session if there is one
// and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	if err := a.ledger.SeedWelcomePosts(ctx); err != nil {
		return fmt.Errorf("error seeding welcome posts: %w", err)
	}

	printlnFn("Welcome to LetsTalk (type 'help' for commands)")

	if sess, err := a.accounts.CurrentSession(ctx); err == nil {
		if u, err := a.accounts.User(ctx, sess.UserID); err == nil {
			a.session, a.userName = sess, u.Name
			printlnFn(fmt.Sprintf("Logged in as %s.", u.Name))
		}
	}

	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// fail prints err for the user and returns it unchanged.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, describe(err))
	if !services.IsBusinessError(err) && !errors.Is(err, errOnboarding) {
		a.log.Error(context.Background(), "command failed", "error", err)
	}
	return err
}

// me reloads the logged-in user.
func (a *App) me(ctx context.Context) (*models.User, error) {
	if a.session == nil {
		return nil, common.ErrNotLoggedIn
	}
	return a.accounts.User(ctx, a.session.UserID)
}

// member reloads the logged-in user and requires finished onboarding.
func (a *App) member(ctx context.Context) (*models.User, error) {
	u, err := a.me(ctx)
	if err != nil {
		return nil, err
	}
	if !u.HasCompletedWelcome {
		return nil, errOnboarding
	}
	return u, nil
}
