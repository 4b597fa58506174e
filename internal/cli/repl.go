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
	Open(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Activate(ctx context.Context, token string) error
	Whoami(ctx context.Context) error
	Groups(ctx context.Context) error
	AddGroup(ctx context.Context) error
	EditGroup(ctx context.Context, id string) error
	RemoveGroup(ctx context.Context, id string) error
	Admin(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the link-storage client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - open <path>       — navigate to a route (e.g. open /dashboard)
//	  - register          — create an account
//	  - activate <token>  — confirm an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - open <path>       — navigate to a route
//	  - whoami            — show the current user
//	  - groups | g        — list link groups
//	  - add               — create a link group
//	  - edit <id>         — edit a link group
//	  - rm <id>           — delete a link group
//	  - admin             — open the admin dashboard
//	  - refresh           — refresh the session tokens
//	  - logout            — log out
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ls> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open <path>, whoami, (g)roups, add, edit <id>, rm <id>, admin, refresh, logout, exit")
			} else {
				printlnFn("Available commands: open <path>, register, activate <token>, login, exit")
			}

		case "open":
			if arg == "" {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, arg)

		case "register":
			_ = a.Register(ctx)

		case "activate":
			if arg == "" {
				printlnFn("Usage: activate <token>")
				continue
			}
			_ = a.Activate(ctx, arg)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "g", "groups":
			_ = a.Groups(ctx)

		case "add":
			_ = a.AddGroup(ctx)

		case "edit":
			if arg == "" {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditGroup(ctx, arg)

		case "rm":
			if arg == "" {
				printlnFn("Usage: rm <id>")
				continue
			}
			_ = a.RemoveGroup(ctx, arg)

		case "admin":
			_ = a.Admin(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
