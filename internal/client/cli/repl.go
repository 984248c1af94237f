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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Switch(ctx context.Context) error
	Select(ctx context.Context, path string) error
	Upload(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Results(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The first word is the command; the rest of the line is its argument.
// Commands of the other screen are refused. The loop exits on EOF or when
// the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report to
// the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("resumerag %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn("Available commands: select <path>, upload, search <query>, results, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, switch, exit")
			}
			continue
		}

		if a.isLoggedIn() {
			switch cmd {
			case "select":
				_ = a.Select(ctx, arg)
			case "upload":
				_ = a.Upload(ctx)
			case "search":
				_ = a.Search(ctx, arg)
			case "results":
				_ = a.Results(ctx)
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			case "login", "signup", "switch":
				printlnFn("Already logged in. Use logout first.")
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		case "switch":
			_ = a.Switch(ctx)
		case "select", "upload", "search", "results", "whoami", "logout":
			printlnFn("Please log in first.")
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
