package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/letstalk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, password and bio, creates the account
// and logs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	bio, err := getSimpleText(a.reader, "Tell us about yourself (optional)", a.out)
	if err != nil {
		return err
	}

	u, err := a.accounts.Signup(ctx, name, email, string(password), bio)
	if err != nil {
		return a.fail(err)
	}
	if err := a.startSession(ctx, u.Email, u.Name); err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Welcome, %s! Respond to one of the welcome posts to get started (type 'welcome').\n", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.accounts.Login(ctx, email, string(password))
	if err != nil {
		return a.fail(err)
	}
	if err := a.startSession(ctx, u.Email, u.Name); err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "Login successful. Hi, %s!\n", u.Name)
	if !u.HasCompletedWelcome {
		fmt.Fprintln(a.out, "Respond to one of the welcome posts to get started (type 'welcome').")
	}
	return nil
}

func (a *App) startSession(ctx context.Context, email, name string) error {
	sess, err := a.accounts.SetCurrentSession(ctx, email)
	if err != nil {
		return err
	}
	a.session, a.userName = sess, name
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.ClearSession(ctx); err != nil {
		return a.fail(err)
	}
	a.session, a.userName = nil, ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
