package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hanoi/internal/core"
)

// TestParseInput_Accepted lists the accepted spellings of a move and of quit.
func TestParseInput_Accepted(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"q", Command{Type: CmdQuit, Raw: "q"}},
		{"q\n", Command{Type: CmdQuit, Raw: "q"}},
		{"q\r\n", Command{Type: CmdQuit, Raw: "q"}},
		{"[1,3]", Command{Type: CmdMove, From: core.PegLeft, To: core.PegRight, Raw: "[1,3]"}},
		{"[3,2]\n", Command{Type: CmdMove, From: core.PegRight, To: core.PegMiddle, Raw: "[3,2]"}},
		{"[ 2 , 1 ]", Command{Type: CmdMove, From: core.PegMiddle, To: core.PegLeft, Raw: "[ 2 , 1 ]"}},
		{"[01,02]", Command{Type: CmdMove, From: core.PegLeft, To: core.PegMiddle, Raw: "[01,02]"}},
		{"[1,3,]", Command{Type: CmdMove, From: core.PegLeft, To: core.PegRight, Raw: "[1,3,]"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := ParseInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

// TestParseInput_CheckOrder verifies which rejection wins when an input breaks several rules.
func TestParseInput_CheckOrder(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"Q", ErrUnrecognized},
		{"(1,2)", ErrUnrecognized},
		{"[", ErrUnrecognized},
		{"[a,b,c]", ErrArity},      // arity before numbers
		{"[x,9]", ErrNotNumeric},   // numbers before range
		{"[9,9]", ErrNoSuchColumn}, // range before sameness
		{"[1.5,2]", ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseInput(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

// TestParseInput_QuitIsExact only accepts a bare q; the line terminator is the only thing stripped.
func TestParseInput_QuitIsExact(t *testing.T) {
	for _, input := range []string{"q ", " q", "\tq\n", "qq", "Q\n"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInput(input)
			assert.ErrorIs(t, err, ErrUnrecognized)
		})
	}
}

// TestParseInput_TrailingEmptyTokens counts only the fields before trailing commas.
func TestParseInput_TrailingEmptyTokens(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"[1,]", ErrArity},
		{"[1,,]", ErrArity},
		{"[,]", ErrArity},
		{"[]", ErrArity},
		{"[,1]", ErrNotNumeric},
		{"[1, ]", ErrNotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseInput(tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
