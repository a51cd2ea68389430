package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Welcome(ctx context.Context) error
	Respond(ctx context.Context, postID string) error
	Unrespond(ctx context.Context, postID, responseID string) error
	Post(ctx context.Context) error
	Delete(ctx context.Context, postID string) error
	Feed(ctx context.Context) error
	Mine(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Friends(ctx context.Context) error
	Requests(ctx context.Context) error
	AddFriend(ctx context.Context, email string) error
	Accept(ctx context.Context, requestID string) error
	Reject(ctx context.Context, requestID string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help                         : show available commands
//	  - register                     : create an account
//	  - login                        : authenticate
//	  - exit | quit                  : leave the program
//
//	Logged in:
//	  - welcome                      : list the welcome posts
//	  - respond <post>               : answer a post, earns a credit
//	  - unrespond <post> <response>  : retract a response within 2 minutes
//	  - post                         : write a post, costs a credit
//	  - delete <post>                : delete your post, refunds the credit
//	  - feed | mine                  : friends' posts | your posts
//	  - profile | edit               : show | change your profile
//	  - friends | requests           : friends | pending requests
//	  - addfriend <email>            : send a friend request
//	  - accept <id> | reject <id>    : answer a friend request
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("letstalk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: welcome, respond <post>, unrespond <post> <response>, post, delete <post>, feed, mine, profile, edit, friends, requests, addfriend <email>, accept <id>, reject <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "welcome":
			_ = a.Welcome(ctx)

		case "respond":
			if len(args) < 1 {
				printlnFn("Usage: respond <post id>")
				continue
			}
			_ = a.Respond(ctx, args[0])

		case "unrespond":
			if len(args) < 2 {
				printlnFn("Usage: unrespond <post id> <response id>")
				continue
			}
			_ = a.Unrespond(ctx, args[0], args[1])

		case "post":
			_ = a.Post(ctx)

		case "delete":
			if len(args) < 1 {
				printlnFn("Usage: delete <post id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "feed":
			_ = a.Feed(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "friends":
			_ = a.Friends(ctx)

		case "requests":
			_ = a.Requests(ctx)

		case "addfriend":
			if len(args) < 1 {
				printlnFn("Usage: addfriend <email>")
				continue
			}
			_ = a.AddFriend(ctx, args[0])

		case "accept":
			if len(args) < 1 {
				printlnFn("Usage: accept <request id>")
				continue
			}
			_ = a.Accept(ctx, args[0])

		case "reject":
			if len(args) < 1 {
				printlnFn("Usage: reject <request id>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
