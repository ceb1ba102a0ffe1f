// FILE: internal/cli/cli.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hanoi/internal/game"
)

const Prompt = "Enter move>"

type CLI struct {
	output io.Writer
	theme  ColorTheme
	styles themeStyles
}

func New(output io.Writer) *CLI {
	c := &CLI{output: output}
	c.styles = newThemeStyles(lipgloss.NewRenderer(output), ThemeOff)
	c.theme = ThemeOff
	return c
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, blue, green, gray)", theme)
	}
	c.theme = theme
	c.styles = newThemeStyles(lipgloss.NewRenderer(c.output), theme)
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("# Welcome to the Tower of Hanoi!")
	c.ShowMessage("# Instructions:")
	c.ShowMessage("# Enter where you'd like to move from and to")
	c.ShowMessage("# in the format [1,3] Enter 'q' to quit.")
}

// DisplayBoard prints the rendered rows under a header, styling disks and labels
func (c *CLI) DisplayBoard(lines []string) {
	var sb strings.Builder
	sb.WriteString("Current Board:\n")
	for i, line := range lines {
		if i == len(lines)-1 {
			sb.WriteString(c.styles.footer(line))
		} else {
			sb.WriteString(c.styles.row(line))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(c.output, sb.String())
}

func (c *CLI) ShowRejection(err error) {
	c.ShowMessage(Message(err))
}

func (c *CLI) ShowFarewell() {
	c.ShowMessage("Better luck next time!")
}

func (c *CLI) ShowVictory(moves, minimum int) {
	c.ShowMessage("Congratulations! You win!")
	if moves == minimum {
		c.ShowMessage(fmt.Sprintf("Solved in %d moves, a perfect game!", moves))
	} else {
		c.ShowMessage(fmt.Sprintf("Solved in %d moves (the minimum is %d).", moves, minimum))
	}
}

// Message maps a rejected input to the text shown to the player
func Message(err error) string {
	var moveErr *game.MoveError
	switch {
	case errors.As(err, &moveErr) && errors.Is(err, game.ErrEmptySource):
		return fmt.Sprintf("There's nothing to take from column %s!", moveErr.From)
	case errors.Is(err, game.ErrLargerOnSmaller):
		return "You can't put a bigger piece on top of a smaller one! Try again!"
	case errors.Is(err, game.ErrPointless):
		return "Why would you even pick up a piece just to set it back down?! Try again! (But not what you just did!)"
	case errors.Is(err, game.ErrNoSuchColumn):
		return "You're trying to move columns that don't even exist! Try again!"
	case errors.Is(err, game.ErrNotNumeric):
		return "Columns are numbered 1, 2 and 3! Try again!"
	case errors.Is(err, game.ErrArity):
		return "Wrong number of inputs! Try again!"
	case errors.Is(err, game.ErrUnrecognized):
		return "I can't tell what you're trying to say! Try again!"
	case errors.Is(err, game.ErrGameOver):
		return "The game is already over!"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
