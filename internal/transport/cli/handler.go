// FILE: internal/transport/cli/handler.go
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"hanoi/internal/cli"
	"hanoi/internal/core"
	"hanoi/internal/game"
	"hanoi/internal/transport"
)

type CLIHandler struct {
	game  *game.Game
	view  transport.View
	input transport.LineReader
	log   zerolog.Logger
}

func New(g *game.Game, view transport.View, input transport.LineReader, log zerolog.Logger) *CLIHandler {
	return &CLIHandler{
		game:  g,
		view:  view,
		input: input,
		log:   log,
	}
}

// Main game loop: one render, prompt, parse and win check per iteration.
// Returns the state the game ended in.
func (h *CLIHandler) Run(ctx context.Context) core.State {
	h.view.ShowWelcome()

	for !h.game.Done() {
		if err := ctx.Err(); err != nil {
			h.log.Debug().Err(err).Msg("context done")
			h.ProcessLine(game.QuitInput)
			break
		}

		h.view.DisplayBoard(h.game.Render())

		// Get input (blocking)
		line, err := h.input.ReadLine(cli.Prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.log.Error().Err(err).Msg("failed to read input")
			}
			// End of input is treated as quitting
			h.ProcessLine(game.QuitInput)
			break
		}

		h.ProcessLine(line)
	}

	h.log.Info().
		Str("state", h.game.State().String()).
		Int("moves", h.game.Moves()).
		Int("height", h.game.Height()).
		Msg("game finished")

	return h.game.State()
}

// ProcessLine acts on one line of input and reports the outcome
func (h *CLIHandler) ProcessLine(line string) {
	wasWon := h.game.Won()
	cmd, err := h.game.ParseMove(line)
	switch {
	case err != nil:
		h.log.Debug().Str("input", line).Err(err).Msg("input rejected")
		h.view.ShowRejection(err)

	case cmd.Type == game.CmdQuit:
		h.view.ShowFarewell()

	default:
		if res := h.game.LastResult(); res != nil {
			h.log.Debug().
				Stringer("from", res.From).
				Stringer("to", res.To).
				Int("disk", res.Disk).
				Int("moves", res.Moves).
				Msg("move applied")
		}
	}

	if !wasWon && h.game.CheckWin() {
		h.view.ShowVictory(h.game.Moves(), h.game.MinimumMoves())
		// Draw the board one last time since the loop stops here
		h.view.DisplayBoard(h.game.Render())
	}
}
