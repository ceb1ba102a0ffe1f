// FILE: internal/game/game.go
package game

import (
	"math"
	"math/bits"

	"hanoi/internal/board"
	"hanoi/internal/core"
)

// MoveResult tracks the outcome of the last accepted move
type MoveResult struct {
	From  core.PegID
	To    core.PegID
	Disk  int
	Moves int // Accepted moves so far, including this one
}

type Game struct {
	board      *board.Board
	rules      core.Rules
	winTarget  []int
	state      core.State
	moves      int
	lastResult *MoveResult
}

// New sets up a game with height disks on the left peg
func New(height int, rules core.Rules) (*Game, error) {
	b, err := board.New(height)
	if err != nil {
		return nil, err
	}

	target := make([]int, 0, height)
	for d := height; d >= 1; d-- {
		target = append(target, d)
	}

	return &Game{
		board:     b,
		rules:     rules,
		winTarget: target,
		state:     core.StateOngoing,
	}, nil
}

// Move transfers the top disk from one peg to another.
// A refused move leaves the board unchanged and returns a *MoveError.
func (g *Game) Move(from, to core.PegID) error {
	if g.state.Done() {
		return ErrGameOver
	}
	if from == to {
		return &MoveError{From: from, To: to, Err: ErrPointless}
	}

	disk, err := g.board.Move(from, to, g.rules)
	if err != nil {
		return &MoveError{From: from, To: to, Err: err}
	}

	g.moves++
	g.lastResult = &MoveResult{
		From:  from,
		To:    to,
		Disk:  disk,
		Moves: g.moves,
	}
	return nil
}

// ParseMove reads one line of input and acts on it: quit, move, or reject.
// The parsed command is returned even when the move itself is refused.
func (g *Game) ParseMove(line string) (Command, error) {
	cmd, err := ParseInput(line)
	if err != nil {
		return cmd, err
	}
	if g.state.Done() {
		return cmd, ErrGameOver
	}

	switch cmd.Type {
	case CmdQuit:
		g.state = core.StateQuit
		return cmd, nil
	default:
		return cmd, g.Move(cmd.From, cmd.To)
	}
}

// CheckWin marks the game won once the right peg holds the full tower
func (g *Game) CheckWin() bool {
	if g.state == core.StateWon {
		return true
	}
	if g.state == core.StateQuit {
		return false
	}

	right := g.board.Peg(core.PegRight)
	if right.Len() != len(g.winTarget) {
		return false
	}
	for i, d := range g.winTarget {
		if right.At(i) != d {
			return false
		}
	}

	g.state = core.StateWon
	return true
}

// Render returns the current board as text lines
func (g *Game) Render() []string {
	return board.Render(g.board.Disks(), g.board.Height())
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Height() int {
	return g.board.Height()
}

func (g *Game) Rules() core.Rules {
	return g.rules
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) Quit() bool {
	return g.state == core.StateQuit
}

func (g *Game) Won() bool {
	return g.state == core.StateWon
}

func (g *Game) Done() bool {
	return g.state.Done()
}

func (g *Game) Moves() int {
	return g.moves
}

// MinimumMoves is the length of the shortest solution, 2^height - 1.
// It saturates at math.MaxInt for towers too tall to count.
func (g *Game) MinimumMoves() int {
	h := g.board.Height()
	if h >= bits.UintSize-1 {
		return math.MaxInt
	}
	return 1<<uint(h) - 1
}

func (g *Game) LastResult() *MoveResult {
	return g.lastResult
}

// WinCondition returns a copy of the target layout for the right peg
func (g *Game) WinCondition() []int {
	out := make([]int, len(g.winTarget))
	copy(out, g.winTarget)
	return out
}
