// Package display provides the terminal adapters the game engine reads
// choices from and writes status lines to.
package display

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/lox/blackjack-cli/internal/game"
)

// lineReader is the subset of readline used by the console
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Console reads player choices with readline and prints styled lines.
// It satisfies both game.Input and game.Output.
type Console struct {
	rl     lineReader
	out    io.Writer
	styles *Styles
	logger *log.Logger
}

var (
	_ game.Input  = (*Console)(nil)
	_ game.Output = (*Console)(nil)
)

// NewConsole creates a console reading from stdin and writing to stdout
func NewConsole(stdin io.ReadCloser, stdout io.Writer, logger *log.Logger) (*Console, error) {
	styles := DefaultStyles()

	cfg := &readline.Config{
		Prompt:                 styles.Input.Render("> "),
		Stdin:                  stdin,
		Stdout:                 stdout,
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
	}

	// Piped input never touches terminal modes
	interactive := isTerminal(stdin) && isTerminal(stdout)
	cfg.FuncIsTerminal = func() bool { return interactive }
	if !interactive {
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return newConsole(rl, stdout, styles, logger), nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && readline.IsTerminal(int(f.Fd()))
}

func newConsole(rl lineReader, out io.Writer, styles *Styles, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Console{
		rl:     rl,
		out:    out,
		styles: styles,
		logger: logger,
	}
}

// ReadLine reads one line of input. Closed input and interrupts both end
// the game and are reported as game.ErrEndOfInput.
func (c *Console) ReadLine() (string, error) {
	line, err := c.rl.Readline()
	switch {
	case err == nil:
		c.logger.Debug("Read input", "line", line)
		return line, nil
	case errors.Is(err, io.EOF):
		c.logger.Debug("Input closed")
		return "", game.ErrEndOfInput
	case errors.Is(err, readline.ErrInterrupt):
		c.logger.Debug("Input interrupted")
		return "", fmt.Errorf("interrupted: %w", game.ErrEndOfInput)
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}

// WriteLine prints a line, highlighting the player's prompt and rejections
func (c *Console) WriteLine(line string) {
	fmt.Fprintln(c.out, c.styleFor(line).Render(line))
}

func (c *Console) styleFor(line string) lipgloss.Style {
	switch line {
	case game.PromptMoreCards:
		return c.styles.Prompt
	case game.InvalidChoiceMessage:
		return c.styles.Error
	default:
		return c.styles.Text
	}
}

// Banner prints a title line followed by a blank line
func (c *Console) Banner(title string) {
	fmt.Fprintln(c.out, c.styles.Title.Render(title))
	fmt.Fprintln(c.out)
}

// Close releases the terminal
func (c *Console) Close() error {
	return c.rl.Close()
}
