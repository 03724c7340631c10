package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Feed(ctx context.Context) error
	Like(ctx context.Context, arg string) error
	Save(ctx context.Context, arg string) error
	Saved(ctx context.Context) error
	Comments(ctx context.Context, arg string) error
	Comment(ctx context.Context, arg string) error
	Upload(ctx context.Context) error
	Badge(ctx context.Context) error
	Label(ctx context.Context) error
	Lang(ctx context.Context, arg string) error
	Admin(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the Drezzle CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Guest:
//	  - help                    — show available commands
//	  - register                — create an account
//	  - login                   — authenticate
//	  - lang [tag]              — show or switch the UI language
//	  - feed                    — browse the content feed
//	  - comments <n>            — read comments on feed item n
//	  - exit | quit             — leave the program
//
//	Signed in additionally:
//	  - whoami                  — show the resolved profile
//	  - like <n> | save <n>     — react to feed item n
//	  - saved                   — list saved contents
//	  - comment <n>             — comment on feed item n
//	  - upload                  — publish audio or video
//	  - badge | label           — file verification requests
//	  - logout                  — log out
//
//	Admin additionally:
//	  - admin                   — moderation dashboard
//	  - verify <kind> <n> <decision> — decide a pending request
//
// Any errors returned by command handlers are ignored here; handlers log and
// present their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("drezzle %s> ", statusFn()))
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

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: help, feed, comments <n>, lang [tag], exit")
			if a.isLoggedIn() {
				printlnFn("  whoami, like <n>, save <n>, saved, comment <n>, upload, badge, label, logout")
			} else {
				printlnFn("  register, login")
			}
			if a.isAdmin() {
				printlnFn("  admin, verify <expert|label> <n> <approve|reject>")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "like":
			_ = a.Like(ctx, arg)

		case "save":
			_ = a.Save(ctx, arg)

		case "saved":
			_ = a.Saved(ctx)

		case "comments":
			_ = a.Comments(ctx, arg)

		case "comment":
			_ = a.Comment(ctx, arg)

		case "upload":
			_ = a.Upload(ctx)

		case "badge":
			_ = a.Badge(ctx)

		case "label":
			_ = a.Label(ctx)

		case "lang":
			_ = a.Lang(ctx, arg)

		case "admin":
			_ = a.Admin(ctx)

		case "verify":
			_ = a.Verify(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
