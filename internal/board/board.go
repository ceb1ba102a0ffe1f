// FILE: internal/board/board.go
package board

import (
	"errors"
	"fmt"

	"hanoi/internal/core"
)

var (
	ErrEmptyPeg        = errors.New("peg is empty")
	ErrLargerOnSmaller = errors.New("larger disk onto smaller disk")
)

// Peg is a stack of disk sizes, stored bottom to top
type Peg struct {
	disks []int
}

func (p *Peg) Push(disk int) {
	p.disks = append(p.disks, disk)
}

func (p *Peg) Pop() (int, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	disk := p.disks[len(p.disks)-1]
	p.disks = p.disks[:len(p.disks)-1]
	return disk, true
}

func (p *Peg) Top() (int, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	return p.disks[len(p.disks)-1], true
}

func (p *Peg) Len() int {
	return len(p.disks)
}

// At returns the disk at row i counted from the bottom, or 0 if the row is empty
func (p *Peg) At(i int) int {
	if i < 0 || i >= len(p.disks) {
		return 0
	}
	return p.disks[i]
}

// Disks returns a copy of the peg contents, bottom first
func (p *Peg) Disks() []int {
	out := make([]int, len(p.disks))
	copy(out, p.disks)
	return out
}

type Board struct {
	pegs   [core.PegCount]Peg
	height int
}

// New stacks disks height..1 on the left peg
func New(height int) (*Board, error) {
	if height < 1 {
		return nil, fmt.Errorf("invalid height %d: must be at least 1", height)
	}

	b := &Board{height: height}
	for d := height; d >= 1; d-- {
		b.pegs[0].Push(d)
	}
	return b, nil
}

func (b *Board) Height() int {
	return b.height
}

// Peg returns the peg for id; id must be valid
func (b *Board) Peg(id core.PegID) *Peg {
	return &b.pegs[id-1]
}

// Disks returns the contents of all three pegs, bottom first
func (b *Board) Disks() [core.PegCount][]int {
	var out [core.PegCount][]int
	for i := range b.pegs {
		out[i] = b.pegs[i].Disks()
	}
	return out
}

// Count returns the number of disks across all pegs
func (b *Board) Count() int {
	n := 0
	for i := range b.pegs {
		n += b.pegs[i].Len()
	}
	return n
}

// Move transfers the top disk of from onto to and returns the moved disk.
// Under RulesClassic any disk may land on any peg.
func (b *Board) Move(from, to core.PegID, rules core.Rules) (int, error) {
	if !from.Valid() || !to.Valid() {
		return 0, fmt.Errorf("invalid peg pair %s -> %s", from, to)
	}

	src, dst := b.Peg(from), b.Peg(to)
	disk, ok := src.Top()
	if !ok {
		return 0, ErrEmptyPeg
	}

	if rules == core.RulesStrict {
		if under, ok := dst.Top(); ok && under < disk {
			return 0, ErrLargerOnSmaller
		}
	}

	src.Pop()
	dst.Push(disk)
	return disk, nil
}

// String renders the board as plain text
func (b *Board) String() string {
	return Join(Render(b.Disks(), b.height))
}
