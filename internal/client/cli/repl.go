package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb.
type command struct {
	name    string
	aliases []string
	usage   string
	minArgs int
	// auth marks commands that act on behalf of the logged in identity.
	auth bool
	run  func(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop over cmds.
//
// It reads a line from the scanner, parses the first token as the command
// and passes the remaining tokens as arguments. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// "help" lists the commands available in the current session state. A
// command marked auth is refused until loggedIn reports true; a command
// given fewer than minArgs arguments prints its usage instead of running.
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, cmds []command, loggedIn func() bool, statusFn func() string, scanner *bufio.Scanner) {
	index := make(map[string]*command, len(cmds))
	for i := range cmds {
		c := &cmds[i]
		index[c.name] = c
		for _, alias := range c.aliases {
			index[alias] = c
		}
	}

	for {
		printlnFn(fmt.Sprintf("market %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(cmds, loggedIn()))
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
		if c.auth && !loggedIn() {
			printlnFn("Please login first")
			continue
		}
		if len(args) < c.minArgs {
			printlnFn("Usage:", c.usage)
			continue
		}
		if err := c.run(ctx, args); err != nil {
			printlnFn("error:", err)
		}
	}
}

func helpText(cmds []command, loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		b.WriteString("\n  ")
		b.WriteString(c.usage)
	}
	b.WriteString("\n  exit")
	return b.String()
}
