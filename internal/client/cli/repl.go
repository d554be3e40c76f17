package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	BrowsePoems(ctx context.Context) error
	ShowPoem(ctx context.Context, id string) error
	Subscribe(ctx context.Context) error
	Unsubscribe(ctx context.Context) error
	Dashboard(ctx context.Context) error
	ManagePoems(ctx context.Context) error
	ManageUsers(ctx context.Context) error
	ManageSubscribers(ctx context.Context) error
	AddPoem(ctx context.Context) error
	EditPoem(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the poetry CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). The reader surface
// (poems, poem <id>, subscribe) is always available; profile, unsubscribe
// and logout require a session; the admin views are additionally guarded by
// AdminGate inside their handlers, so an unauthorized invocation prints the
// deny reason instead of running.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("poetry %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			msg := "Available commands: register, login, poems, poem <id>, subscribe, exit"
			if a.isLoggedIn() {
				msg = "Available commands: poems, poem <id>, profile, subscribe, unsubscribe, logout, exit"
			}
			if a.isAdmin() {
				msg += "\nAdmin: dashboard, managepoems, manageusers, managesubs, addpoem, editpoem <id>"
			}
			printlnFn(msg)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "poems", "l", "list":
			_ = a.BrowsePoems(ctx)

		case "poem":
			if len(args) == 0 {
				printlnFn("Usage: poem <id>")
				continue
			}
			_ = a.ShowPoem(ctx, args[0])

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "unsubscribe":
			_ = a.Unsubscribe(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "managepoems":
			_ = a.ManagePoems(ctx)

		case "manageusers":
			_ = a.ManageUsers(ctx)

		case "managesubs":
			_ = a.ManageSubscribers(ctx)

		case "addpoem":
			_ = a.AddPoem(ctx)

		case "editpoem":
			if len(args) == 0 {
				printlnFn("Usage: editpoem <id>")
				continue
			}
			_ = a.EditPoem(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
