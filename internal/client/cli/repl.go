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
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Blogs(ctx context.Context) error
	MoreBlogs(ctx context.Context) error
	MyBlogs(ctx context.Context) error
	Show(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Comment(ctx context.Context) error
	Reply(ctx context.Context) error
	DeleteComment(ctx context.Context) error
	Email(ctx context.Context) error
	Phone(ctx context.Context) error
	VerifyEmail(ctx context.Context) error
	VerifyPhone(ctx context.Context) error
	Prefs(ctx context.Context) error
	Forgot(ctx context.Context) error
	AI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the blog CLI.
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
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate (LDAP or local)
//	  - blogs | more   — browse public blogs
//	  - show           — show a single blog with its comments
//	  - forgot         — recover a forgotten password
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - myblogs        — list own blogs
//	  - create / edit / delete        — manage own blogs
//	  - comment / reply / delcomment  — manage comments
//	  - email / phone  — add or change contact details
//	  - verify-email / verify-phone   — complete OTP verification
//	  - prefs          — notification preferences
//	  - ai             — AI content helper
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("blog> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: blogs, more, show, forgot, help, exit")
			if a.isLoggedIn() {
				printlnFn("  blogs:    myblogs, create, edit, delete")
				printlnFn("  comments: comment, reply, delcomment")
				printlnFn("  account:  email, phone, verify-email, verify-phone, prefs, logout")
				printlnFn("  extras:   ai")
			} else {
				printlnFn("  account:  register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "blogs":
			_ = a.Blogs(ctx)

		case "more":
			_ = a.MoreBlogs(ctx)

		case "myblogs":
			_ = a.MyBlogs(ctx)

		case "show":
			_ = a.Show(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "reply":
			_ = a.Reply(ctx)

		case "delcomment":
			_ = a.DeleteComment(ctx)

		case "email":
			_ = a.Email(ctx)

		case "phone":
			_ = a.Phone(ctx)

		case "verify-email":
			_ = a.VerifyEmail(ctx)

		case "verify-phone":
			_ = a.VerifyPhone(ctx)

		case "prefs":
			_ = a.Prefs(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "ai":
			_ = a.AI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
