// FILE: internal/core/core.go
package core

import (
	"fmt"
	"strings"
)

type State int

const (
	StateOngoing State = iota
	StateQuit
	StateWon
)

func (s State) String() string {
	switch s {
	case StateQuit:
		return "quit"
	case StateWon:
		return "won"
	case StateOngoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Done reports whether the play loop should stop
func (s State) Done() bool {
	return s == StateQuit || s == StateWon
}

// Rules selects how strictly moves are checked
type Rules int

const (
	RulesClassic Rules = iota // Only an empty source is rejected
	RulesStrict               // Also rejects a larger disk onto a smaller one
)

func (r Rules) String() string {
	switch r {
	case RulesStrict:
		return "strict"
	default:
		return "classic"
	}
}

func ParseRules(s string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classic":
		return RulesClassic, nil
	case "strict":
		return RulesStrict, nil
	default:
		return RulesClassic, fmt.Errorf("invalid rules: %s (use: classic, strict)", s)
	}
}

// PegID identifies one of the three pegs, numbered from 1
type PegID int

const (
	PegLeft PegID = iota + 1
	PegMiddle
	PegRight
)

const PegCount = 3

func (p PegID) Valid() bool {
	return p >= PegLeft && p <= PegRight
}

func (p PegID) String() string {
	return fmt.Sprintf("%d", int(p))
}
