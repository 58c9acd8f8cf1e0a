package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/bootlang/internal/client/views"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type scope int

const (
	scopeAny scope = iota
	scopeGuest
	scopeUser
	scopeAdmin
)

// command is one REPL verb. run gets the words after the verb.
type command struct {
	name  string
	usage string
	help  string
	scope scope
	run   func(ctx context.Context, args []string) error
}

// usageError is returned by a command that got the wrong arguments.
type usageError struct{ usage string }

func (e usageError) Error() string { return "usage: " + e.usage }

// execIface defines the minimal surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	commands() []command
}

// runREPL starts a simple read–eval–print loop for the Boot_Lang CLI.
//
// It reads a line from reader, parses the first word as the command, and
// dispatches to the matching entry of a.commands(). The loop exits on EOF,
// when ctx is done, or when the user types "exit" or "quit".
//
// Commands scoped to signed-in users are refused with a hint while logged
// out. Errors are printed and the loop continues; nothing is fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	cmds := a.commands()
	index := make(map[string]command, len(cmds))
	for _, c := range cmds {
		index[c.name] = c
	}

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("bootlang %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a, cmds))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := index[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if c.scope >= scopeUser && !a.isLoggedIn() {
			printlnFn("Please login first.")
			continue
		}

		if err := c.run(ctx, args); err != nil {
			printlnFn(describeError(err))
		}
	}
}

func visible(a execIface, c command) bool {
	switch c.scope {
	case scopeGuest:
		return !a.isLoggedIn()
	case scopeUser:
		return a.isLoggedIn()
	case scopeAdmin:
		return a.isAdmin()
	default:
		return true
	}
}

func helpText(a execIface, cmds []command) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range cmds {
		if !visible(a, c) {
			continue
		}
		fmt.Fprintf(&b, "  %-28s %s\n", c.usage, c.help)
	}
	fmt.Fprintf(&b, "  %-28s %s", "exit", "leave the program")
	return b.String()
}

func describeError(err error) string {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return "Usage: " + ue.usage
	case errors.Is(err, views.ErrRedirect):
		return "Admin access required."
	case errors.Is(err, views.ErrBusy):
		return "Another action is still running."
	case errors.Is(err, context.Canceled):
		return "Canceled."
	default:
		return "Error: " + views.ErrorText(err, err.Error())
	}
}
