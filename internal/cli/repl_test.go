package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(call string, args ...string) error {
	f.calls = append(f.calls, strings.Join(append([]string{call}, args...), " "))
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.loggedIn = true
	return f.record("register")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Welcome(ctx context.Context) error { return f.record("welcome") }
func (f *fakeExec) Respond(ctx context.Context, postID string) error {
	return f.record("respond", postID)
}
func (f *fakeExec) Unrespond(ctx context.Context, postID, responseID string) error {
	return f.record("unrespond", postID, responseID)
}
func (f *fakeExec) Post(ctx context.Context) error { return f.record("post") }
func (f *fakeExec) Delete(ctx context.Context, postID string) error {
	return f.record("delete", postID)
}
func (f *fakeExec) Feed(ctx context.Context) error     { return f.record("feed") }
func (f *fakeExec) Mine(ctx context.Context) error     { return f.record("mine") }
func (f *fakeExec) Profile(ctx context.Context) error  { return f.record("profile") }
func (f *fakeExec) Edit(ctx context.Context) error     { return f.record("edit") }
func (f *fakeExec) Friends(ctx context.Context) error  { return f.record("friends") }
func (f *fakeExec) Requests(ctx context.Context) error { return f.record("requests") }
func (f *fakeExec) AddFriend(ctx context.Context, email string) error {
	return f.record("addfriend", email)
}
func (f *fakeExec) Accept(ctx context.Context, requestID string) error {
	return f.record("accept", requestID)
}
func (f *fakeExec) Reject(ctx context.Context, requestID string) error {
	return f.record("reject", requestID)
}

func capturePrintln(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&sb, a...) }
	t.Cleanup(func() { printlnFn = orig })
	return &sb
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"welcome",
		"respond welcome-1",
		"unrespond p1 r1",
		"post",
		"delete p1",
		"feed",
		"mine",
		"profile",
		"edit",
		"friends",
		"requests",
		"addfriend bob@example.com",
		"accept q1",
		"reject q2",
		"",
		"foobar",
		"logout",
		"register",
		"exit",
		"feed",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "welcome", "respond welcome-1", "unrespond p1 r1", "post", "delete p1",
		"feed", "mine", "profile", "edit", "friends", "requests", "addfriend bob@example.com",
		"accept q1", "reject q2", "logout", "register",
	}, exec.calls)
	assert.Contains(t, out.String(), "Available commands: register, login, exit")
	assert.Contains(t, out.String(), "Available commands: welcome,")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	out := capturePrintln(t)

	input := "respond\nunrespond p1\ndelete\naddfriend\naccept\nreject\nfeed"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader(input)))

	// the last line has no newline but still runs
	assert.Equal(t, []string{"feed"}, exec.calls)
	for _, usage := range []string{
		"Usage: respond <post id>",
		"Usage: unrespond <post id> <response id>",
		"Usage: delete <post id>",
		"Usage: addfriend <email>",
		"Usage: accept <request id>",
		"Usage: reject <request id>",
	} {
		assert.Contains(t, out.String(), usage)
	}
}
