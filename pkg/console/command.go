package console

import (
	"errors"
	"fmt"
	"strings"
)

// Handler is the function invoked when a command line resolves to a
// command. args[0] is the command name as typed (possibly abbreviated);
// the remaining elements are the user-supplied arguments. A returned error
// is printed to the stream as a diagnostic and logged; it never aborts the
// console.
type Handler func(ctx *Context, args []string) error

// Command describes one entry of the command table: a name, the handler to
// invoke, the maximum number of user arguments it accepts, and a one-line
// help text. The table is supplied once at construction and never mutated
// by the console.
type Command struct {
	Name    string
	Handler Handler
	MaxArgs int
	Help    string
}

// ErrUnknownCommand is reported when no command name matches the input.
var ErrUnknownCommand = errors.New("unknown command")

// ErrAmbiguousCommand is reported when an abbreviated input is a prefix of
// more than one command name.
var ErrAmbiguousCommand = errors.New("ambiguous command")

// resolve maps name to exactly one table entry. An exact match always wins;
// otherwise a unique prefix match succeeds and anything else fails. The
// empty string never matches.
func resolve(commands []Command, name string) (*Command, error) {
	if name == "" {
		return nil, ErrUnknownCommand
	}

	var exact, first *Command
	prefixMatches := 0
	for i := range commands {
		cmd := &commands[i]
		if exact == nil && cmd.Name == name {
			exact = cmd
		}
		if strings.HasPrefix(cmd.Name, name) {
			if first == nil {
				first = cmd
			}
			prefixMatches++
		}
	}

	if exact != nil {
		return exact, nil
	}
	switch prefixMatches {
	case 1:
		return first, nil
	case 0:
		return nil, ErrUnknownCommand
	default:
		return nil, fmt.Errorf("%w: %d commands match %q", ErrAmbiguousCommand, prefixMatches, name)
	}
}

// Context is the capability handed to command handlers. It grants access to
// the console's stream for direct I/O and lets a handler request that the
// session stop.
type Context struct {
	console *Console
}

// Stream returns the console's underlying stream.
func (c *Context) Stream() Stream {
	return c.console.stream
}

// Printf writes formatted output to the stream.
func (c *Context) Printf(format string, args ...any) {
	c.console.printf(format, args...)
}

// Println writes its arguments followed by a line terminator.
func (c *Context) Println(args ...any) {
	c.console.writeString(fmt.Sprint(args...))
	c.console.newline()
}

// RequestStop asks the console to leave the running state. Dispatch of the
// current handler completes normally; subsequent polls become no-ops until
// Start is called again.
func (c *Context) RequestStop() {
	c.console.Stop()
}

// PrintHelp emits the command table listing, one line per command.
func (c *Context) PrintHelp() {
	c.console.PrintHelp()
}

// SetPrompt replaces the console prompt, truncating to MaxPromptLen bytes.
func (c *Context) SetPrompt(prompt string) {
	c.console.SetPrompt(prompt)
}
