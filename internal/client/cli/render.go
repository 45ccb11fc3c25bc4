package cli

import (
	"fmt"
	"strings"

	"blogcli/internal/client/format"
	"blogcli/internal/client/models"
	"blogcli/internal/client/state"
)

// renderNotification prints and consumes the pending notification, if any.
// The REPL is line-oriented, so each message is shown exactly once.
func (a *App) renderNotification() {
	n := a.store.Notifier.Take()
	if n == nil {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", n.Type, n.Message)
}

// renderPending prints a hint when a flow left a dialog open that the user
// must complete with a follow-up command.
func (a *App) renderPending() {
	switch a.store.ActiveModal() {
	case state.ModalEmailOTP:
		fmt.Fprintln(a.out, "(email verification pending: run 'verify-email')")
	case state.ModalMobileOTP:
		fmt.Fprintln(a.out, "(phone verification pending: run 'verify-phone')")
	case state.ModalEmail:
		if e := a.store.EmailForm.Error; e != "" {
			fmt.Fprintf(a.out, "[error] %s\n", e)
		}
		fmt.Fprintln(a.out, "(an email address is needed: run 'email')")
	case state.ModalPhone:
		fmt.Fprintln(a.out, "(a phone number is needed: run 'phone')")
	case state.ModalForgotPassword:
		fmt.Fprintln(a.out, "(password recovery in progress: run 'forgot')")
	}
}

// render is the common tail of every command handler. Draining first keeps
// scheduled prompt callbacks on this goroutine.
func (a *App) render() {
	a.store.RunDeferred()
	a.renderNotification()
	a.renderPending()
}

func (a *App) printBlogLine(b *models.Blog) {
	fmt.Fprintf(a.out, "#%d  %s (%s, %s)\n", b.BlogID, b.Title, b.Author, format.Date(b.Date))
}

func (a *App) printBlogList(blogs []models.Blog, hasMore bool) {
	if len(blogs) == 0 {
		fmt.Fprintln(a.out, "No blogs to show.")
		return
	}
	for i := range blogs {
		a.printBlogLine(&blogs[i])
	}
	if hasMore {
		fmt.Fprintln(a.out, "(type 'more' for the next page)")
	}
}

func (a *App) printBlogDetails(b *models.Blog, comments []models.Comment) {
	fmt.Fprintf(a.out, "#%d  %s\n", b.BlogID, b.Title)
	fmt.Fprintf(a.out, "by %s, %s\n\n", b.Author, format.Date(b.Date))
	fmt.Fprintln(a.out, b.Content)

	if len(comments) == 0 {
		fmt.Fprintln(a.out, "\nNo comments yet.")
		return
	}
	fmt.Fprintf(a.out, "\nComments (%d):\n", len(comments))
	for i := range comments {
		c := &comments[i]
		indent := ""
		if c.IsReply() {
			indent = "    "
		}
		fmt.Fprintf(a.out, "%s[%d] %s (%s): %s\n",
			indent, c.CommentID, c.Author, format.Date(c.Date), strings.TrimSpace(c.Content))
	}
}
