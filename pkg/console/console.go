// Package console implements an interactive line-oriented command console
// over a raw byte stream, such as a serial port or a telnet connection. It
// performs cooked line editing (echo, backspace, cancel), tab completion
// against a static command table, prefix-abbreviated command resolution and
// argument-count validation, then invokes the matching handler.
//
// The console is single-threaded and cooperative: the host calls Poll
// repeatedly, each call drains only the bytes currently available on the
// stream and returns. Nothing blocks and no user-input error ever
// propagates out of Poll or ProcessInput.
package console

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Default construction values.
const (
	DefaultMaxLineLen = 64
	DefaultMaxArgs    = 8
	DefaultPrompt     = "> "

	// MaxPromptLen caps the visible prompt length.
	MaxPromptLen = 17
)

// helpNameWidth is the column the help text starts at in PrintHelp output.
const helpNameWidth = 15

// Control bytes of the wire protocol.
const (
	ctrlC     = 0x03
	bell      = 0x07
	backspace = 0x08
	del       = 0x7f
)

// crlf terminates every line the console emits.
const crlf = "\r\n"

// Options configures a Console. Zero values select the defaults. The sizes
// are fixed once New returns; there is no resizing API.
type Options struct {
	// MaxLineLen is the line buffer capacity. The longest accepted line is
	// one byte shorter.
	MaxLineLen int

	// MaxArgs is the number of user arguments (excluding the command name)
	// the token vector can hold.
	MaxArgs int

	// Prompt is printed after every newline while running. Truncated to
	// MaxPromptLen bytes.
	Prompt string

	// Logger receives debug/warn events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Console is an interactive command dispatcher bound to one stream and one
// immutable command table. It is not safe for concurrent use; a single call
// site is expected to drive Poll.
type Console struct {
	stream   Stream
	commands []Command
	logger   *zap.Logger

	buf     *lineBuffer
	maxArgs int
	prompt  string
	running bool
}

// New creates a Console over stream with the given command table. The
// command table is used as-is and must not be mutated afterwards. New fails
// if the stream is missing or the configured sizes cannot hold a command
// line.
func New(stream Stream, commands []Command, opts Options) (*Console, error) {
	if stream == nil {
		return nil, errors.New("console: stream is required")
	}

	maxLine := opts.MaxLineLen
	if maxLine == 0 {
		maxLine = DefaultMaxLineLen
	}
	if maxLine < 2 {
		return nil, fmt.Errorf("console: max line length %d is too small", maxLine)
	}

	maxArgs := opts.MaxArgs
	if maxArgs == 0 {
		maxArgs = DefaultMaxArgs
	}
	if maxArgs < 1 {
		return nil, fmt.Errorf("console: max args %d is too small", maxArgs)
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if len(prompt) > MaxPromptLen {
		prompt = prompt[:MaxPromptLen]
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Console{
		stream:   stream,
		commands: commands,
		logger:   logger,
		buf:      newLineBuffer(maxLine),
		maxArgs:  maxArgs,
		prompt:   prompt,
	}, nil
}

// Start enters the running state and prints the initial prompt. Calling
// Start on a running console just reprints the prompt.
func (c *Console) Start() {
	c.running = true
	c.printPrompt()
}

// Stop leaves the running state. Poll and ProcessInput become no-ops until
// Start is called again.
func (c *Console) Stop() {
	c.running = false
}

// Running reports whether the console is processing input.
func (c *Console) Running() bool {
	return c.running
}

// Stream returns the underlying stream, for callers that perform their own
// I/O outside command handlers.
func (c *Console) Stream() Stream {
	return c.stream
}

// Prompt returns the current prompt string.
func (c *Console) Prompt() string {
	return c.prompt
}

// SetPrompt replaces the prompt, truncating to MaxPromptLen bytes. Takes
// effect the next time the prompt is printed.
func (c *Console) SetPrompt(prompt string) {
	if len(prompt) > MaxPromptLen {
		prompt = prompt[:MaxPromptLen]
	}
	c.prompt = prompt
}

// Poll drains the bytes currently available on the stream, routing each
// into line editing, completion or line dispatch. It returns immediately
// when stopped or when the stream has nothing buffered.
func (c *Console) Poll() {
	if !c.running {
		return
	}
	for c.stream.Available() > 0 {
		b, err := c.stream.ReadByte()
		if err != nil {
			c.logger.Warn("stream read failed", zap.Error(err))
			return
		}
		c.consume(b)
	}
}

// consume routes a single input byte.
func (c *Console) consume(b byte) {
	switch {
	case b == '\r' || b == '\n':
		if c.buf.Len() > 0 {
			c.dispatchLine(c.buf.String())
		}
		c.buf.Reset()
		if c.running {
			c.printPrompt()
		}
		c.skipPairedTerminator(b)

	case b == '\t':
		c.handleTab()

	case b == backspace || b == del:
		if c.buf.TrimLast() {
			c.writeString("\b \b")
		}

	case b == ctrlC:
		c.buf.Reset()
		c.writeString("^C" + crlf)
		c.printPrompt()

	case b >= 0x20 && b < 0x7f:
		if c.buf.AppendByte(b) {
			c.writeString(string(rune(b)))
		} else {
			c.bell()
		}

	default:
		// Other control bytes are ignored.
	}
}

// skipPairedTerminator consumes the second byte of a CRLF or LFCR pair so
// that paired terminators dispatch one line, not two.
func (c *Console) skipPairedTerminator(first byte) {
	if c.stream.Available() == 0 {
		return
	}
	next, err := c.stream.PeekByte()
	if err != nil {
		return
	}
	if (first == '\r' && next == '\n') || (first == '\n' && next == '\r') {
		c.stream.ReadByte() //nolint:errcheck // peeked byte is buffered
	}
}

// ProcessInput dispatches an already-assembled line, bypassing the
// character-level editing of Poll. No-op while stopped.
func (c *Console) ProcessInput(line string) {
	if !c.running {
		return
	}
	c.dispatchLine(line)
}

// dispatchLine tokenizes a completed line, resolves the command and invokes
// its handler. All failures are rendered onto the stream; none propagate.
func (c *Console) dispatchLine(line string) {
	line = strings.TrimLeft(line, tokenDelims)
	if line == "" {
		return
	}

	// One extra slot holds the command name in front of the user arguments.
	tokens, total := splitLine(line, c.maxArgs+1)
	if total == 0 {
		return
	}

	cmd, err := resolve(c.commands, tokens[0])
	if err != nil {
		c.newline()
		if errors.Is(err, ErrAmbiguousCommand) {
			c.printf("Error: Ambiguous command '%s'.%s", tokens[0], crlf)
		} else {
			c.printf("Error: Unknown command '%s'. Type 'help' for list.%s", tokens[0], crlf)
		}
		c.logger.Debug("command resolution failed",
			zap.String("token", tokens[0]),
			zap.Error(err))
		return
	}

	// The effective limit is also bounded by the token vector size, so a
	// line with more words than the vector holds is reported instead of
	// being silently truncated.
	limit := cmd.MaxArgs
	if limit > c.maxArgs {
		limit = c.maxArgs
	}
	userArgs := total - 1
	if userArgs > limit {
		c.newline()
		c.printf("Error: Too many arguments for '%s' (max: %d, got: %d).%s",
			cmd.Name, limit, userArgs, crlf)
		return
	}

	if cmd.Handler == nil {
		return
	}

	// Blank line separates the echoed input from handler output.
	c.newline()
	c.logger.Debug("dispatching command",
		zap.String("command", cmd.Name),
		zap.Int("args", userArgs))
	if err := cmd.Handler(&Context{console: c}, tokens); err != nil {
		c.printf("Error: %v%s", err, crlf)
		c.logger.Warn("command failed",
			zap.String("command", cmd.Name),
			zap.Error(err))
	}
}

// PrintHelp lists every command with its help text and argument limit.
// Intended to be called from a user-registered help command.
func (c *Console) PrintHelp() {
	c.writeString("Available commands:" + crlf)
	for _, cmd := range c.commands {
		pad := helpNameWidth - len(cmd.Name)
		if pad < 1 {
			pad = 1
		}
		c.printf("  %s%s- %s (max args: %d)%s",
			cmd.Name, strings.Repeat(" ", pad), cmd.Help, cmd.MaxArgs, crlf)
	}
}

// printPrompt emits the prompt on a fresh line.
func (c *Console) printPrompt() {
	c.writeString(crlf + c.prompt)
}

func (c *Console) newline() {
	c.writeString(crlf)
}

func (c *Console) bell() {
	c.writeString("\a")
}

func (c *Console) writeString(s string) {
	if _, err := c.stream.Write([]byte(s)); err != nil {
		c.logger.Warn("stream write failed", zap.Error(err))
	}
}

func (c *Console) printf(format string, args ...any) {
	c.writeString(fmt.Sprintf(format, args...))
}
