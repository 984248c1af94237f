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
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Signup(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Switch(ctx context.Context) error {
	f.calls = append(f.calls, "switch")
	return nil
}
func (f *fakeExec) Select(ctx context.Context, path string) error {
	f.calls = append(f.calls, "select")
	f.args = append(f.args, path)
	return nil
}
func (f *fakeExec) Upload(ctx context.Context) error { f.calls = append(f.calls, "upload"); return nil }
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.args = append(f.args, query)
	return nil
}
func (f *fakeExec) Results(ctx context.Context) error { f.calls = append(f.calls, "results"); return nil }
func (f *fakeExec) WhoAmI(ctx context.Context) error  { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, reader(
		"help",
		"upload",
		"switch",
		"signup",
		"login",
		"help",
		"select  /tmp/my resume.pdf ",
		"upload",
		"search python developer",
		"results",
		"whoami",
		"login",
		"foobar",
		"logout",
		"exit",
		"help",
	))

	assert.Equal(t, []string{
		"switch", "signup", "login",
		"select", "upload", "search", "results", "whoami",
		"logout",
	}, exec.calls)
	assert.Equal(t, []string{"/tmp/my resume.pdf", "python developer"}, exec.args)

	assert.Contains(t, *out, "Available commands: login, signup, switch, exit")
	assert.Contains(t, *out, "Available commands: select <path>, upload, search <query>, results, whoami, logout, exit")
	assert.Contains(t, *out, "Please log in first.")
	assert.Contains(t, *out, "Already logged in. Use logout first.")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, reader("", "   ", "upload"))

	assert.Equal(t, []string{"upload"}, exec.calls)
	assert.NotContains(t, *out, "Bye!")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(login)" }, reader("quit"))
	assert.Equal(t, []string{"resumerag (login)> ", "Bye!"}, *out)
}
