package game

import (
	"strconv"
	"strings"

	"hanoi/internal/core"
)

type CommandType int

const (
	CmdMove CommandType = iota
	CmdQuit
)

type Command struct {
	Type CommandType
	From core.PegID
	To   core.PegID
	Raw  string
}

const QuitInput = "q"

// ParseInput turns one line of player input into a command without touching any game.
// Accepted forms are "q" and "[from,to]" with from and to in 1..3 and distinct.
func ParseInput(line string) (Command, error) {
	input := strings.TrimRight(line, "\r\n")
	if input == QuitInput {
		return Command{Type: CmdQuit, Raw: input}, nil
	}

	if len(input) < 2 || input[0] != '[' || input[len(input)-1] != ']' {
		return Command{}, ErrUnrecognized
	}

	tokens := strings.Split(input[1:len(input)-1], ",")
	// Trailing empty fields don't count: "[1,]" has one token
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != 2 {
		return Command{}, ErrArity
	}

	var cols [2]int
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return Command{}, ErrNotNumeric
		}
		cols[i] = n
	}

	from, to := core.PegID(cols[0]), core.PegID(cols[1])
	if !from.Valid() || !to.Valid() {
		return Command{}, ErrNoSuchColumn
	}
	if from == to {
		return Command{}, ErrPointless
	}

	return Command{Type: CmdMove, From: from, To: to, Raw: input}, nil
}
