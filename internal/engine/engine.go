// Package engine defines how the server asks a chess engine for a move.
//
// Implementations live in sub-packages: stockfishonline talks to the public
// Stockfish.online HTTP API and uci drives a local UCI engine binary.
package engine

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ironsheep/chess-mcp/internal/board"
)

// ErrNoMove is returned when an engine has no move for a position.
var ErrNoMove = errors.New("no move found")

// Engine suggests the next move for a position.
type Engine interface {
	// NextMove returns a move in UCI notation, or an error wrapping
	// ErrNoMove when the engine answered without a usable move.
	NextMove(ctx context.Context, pos *board.Position) (string, error)

	// Name identifies the engine in logs.
	Name() string
}

// Guess asks eng for a move and checks it against the position.
//
// Any failure, including an engine move that is not legal in pos, is logged
// at warn level and reported as ("", false): callers only distinguish "a
// move" from "no move".
func Guess(ctx context.Context, eng Engine, pos *board.Position, log zerolog.Logger) (string, bool) {
	log = log.With().Str("engine", eng.Name()).Str("fen", pos.FEN()).Logger()
	log.Debug().Msg("guessing next move")

	uci, err := eng.NextMove(ctx, pos)
	if err != nil {
		if errors.Is(err, ErrNoMove) {
			log.Warn().Err(err).Msg("no next move found")
		} else {
			log.Warn().Err(err).Msg("engine call failed")
		}
		return "", false
	}

	m, err := pos.Resolve(uci)
	if err != nil {
		log.Warn().Err(err).Str("move", uci).Msg("engine returned an unusable move")
		return "", false
	}

	move := pos.UCI(m)
	log.Info().Str("move", move).Msg("found next move")
	return move, true
}
