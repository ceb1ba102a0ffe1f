package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanoi/internal/core"
	"hanoi/internal/game"
)

// TestMessage maps each rejection to the text shown to the player.
func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty source", &game.MoveError{From: core.PegMiddle, To: core.PegRight, Err: game.ErrEmptySource}, "There's nothing to take from column 2!"},
		{"pointless", game.ErrPointless, "Why would you even pick up a piece just to set it back down?! Try again! (But not what you just did!)"},
		{"range", game.ErrNoSuchColumn, "You're trying to move columns that don't even exist! Try again!"},
		{"arity", game.ErrArity, "Wrong number of inputs! Try again!"},
		{"unrecognized", game.ErrUnrecognized, "I can't tell what you're trying to say! Try again!"},
		{"not numeric", game.ErrNotNumeric, "Columns are numbered 1, 2 and 3! Try again!"},
		{"order", &game.MoveError{From: core.PegLeft, To: core.PegRight, Err: game.ErrLargerOnSmaller}, "You can't put a bigger piece on top of a smaller one! Try again!"},
		{"over", game.ErrGameOver, "The game is already over!"},
		{"other", fmt.Errorf("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

// TestDisplayBoard_Plain prints the header and rows exactly as rendered.
func TestDisplayBoard_Plain(t *testing.T) {
	var buf bytes.Buffer
	view := New(&buf)

	g, err := game.New(3, core.RulesClassic)
	require.NoError(t, err)
	view.DisplayBoard(g.Render())

	want := "Current Board:\n" +
		"#                \n" +
		"# o              \n" +
		"# oo             \n" +
		"# ooo            \n" +
		"# 1    2    3    \n"
	assert.Equal(t, want, buf.String())
}

// TestDisplayBoard_Themed keeps the visible board intact when a theme is set.
func TestDisplayBoard_Themed(t *testing.T) {
	var buf bytes.Buffer
	view := New(&buf)
	require.NoError(t, view.SetTheme(ThemeGreen))
	assert.Equal(t, ThemeGreen, view.Theme())

	view.DisplayBoard([]string{"# ooo  o    ", "# 1  2  3  "})

	out := stripANSI(buf.String())
	assert.Equal(t, "Current Board:\n# ooo  o    \n# 1  2  3  \n", out)
}

func TestSetTheme_Invalid(t *testing.T) {
	view := New(io.Discard)
	assert.Error(t, view.SetTheme("pink"))
	assert.Equal(t, ThemeOff, view.Theme())
}

func TestShowWelcome(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).ShowWelcome()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# Welcome to the Tower of Hanoi!", lines[0])
	assert.Equal(t, "# in the format [1,3] Enter 'q' to quit.", lines[3])
}

func TestShowVictory(t *testing.T) {
	var buf bytes.Buffer
	view := New(&buf)

	view.ShowVictory(7, 7)
	assert.Equal(t, "Congratulations! You win!\nSolved in 7 moves, a perfect game!\n", buf.String())

	buf.Reset()
	view.ShowVictory(9, 7)
	assert.Contains(t, buf.String(), "Solved in 9 moves (the minimum is 7).")
}

// TestScannerReader prints the prompt per read and reports io.EOF at the end.
func TestScannerReader(t *testing.T) {
	var out bytes.Buffer
	r := NewScannerReader(strings.NewReader("[1,3]\nq\n"), &out)

	line, err := r.ReadLine(Prompt)
	require.NoError(t, err)
	assert.Equal(t, "[1,3]", line)

	line, err = r.ReadLine(Prompt)
	require.NoError(t, err)
	assert.Equal(t, "q", line)

	_, err = r.ReadLine(Prompt)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "Enter move>\nEnter move>\nEnter move>\n", out.String())
	assert.NoError(t, r.Close())
}

// stripANSI drops CSI escape sequences so themed output can be compared as text
func stripANSI(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
