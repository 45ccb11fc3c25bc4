package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) call(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) Register(ctx context.Context) error { return f.call("register") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}
func (f *fakeExec) Blogs(ctx context.Context) error         { return f.call("blogs") }
func (f *fakeExec) MoreBlogs(ctx context.Context) error     { return f.call("more") }
func (f *fakeExec) MyBlogs(ctx context.Context) error       { return f.call("myblogs") }
func (f *fakeExec) Show(ctx context.Context) error          { return f.call("show") }
func (f *fakeExec) Create(ctx context.Context) error        { return f.call("create") }
func (f *fakeExec) Edit(ctx context.Context) error          { return f.call("edit") }
func (f *fakeExec) Delete(ctx context.Context) error        { return f.call("delete") }
func (f *fakeExec) Comment(ctx context.Context) error       { return f.call("comment") }
func (f *fakeExec) Reply(ctx context.Context) error         { return f.call("reply") }
func (f *fakeExec) DeleteComment(ctx context.Context) error { return f.call("delcomment") }
func (f *fakeExec) Email(ctx context.Context) error         { return f.call("email") }
func (f *fakeExec) Phone(ctx context.Context) error         { return f.call("phone") }
func (f *fakeExec) VerifyEmail(ctx context.Context) error   { return f.call("verify-email") }
func (f *fakeExec) VerifyPhone(ctx context.Context) error   { return f.call("verify-phone") }
func (f *fakeExec) Prefs(ctx context.Context) error         { return f.call("prefs") }
func (f *fakeExec) Forgot(ctx context.Context) error        { return f.call("forgot") }
func (f *fakeExec) AI(ctx context.Context) error            { return f.call("ai") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"blogs",
		"more",
		"show",
		"create",
		"comment",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "blogs", "more", "show", "create", "comment"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ShortAliasAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("b\nquit\nblogs\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	// "b" dispatches, "quit" terminates the loop before the last line
	if len(exec.calls) != 1 || exec.calls[0] != "blogs" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nexit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
