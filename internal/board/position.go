package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrInvalidMove = errors.New("invalid UCI move")
	ErrIllegalMove = errors.New("illegal move")
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a parsed chess position.
type Position struct {
	fen  string
	game *chess.Game
}

// Parse loads a FEN string.
//
// A FEN with only the four placement/turn/castling/en-passant fields is
// accepted and completed with "0 1" move counters.
func Parse(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 0:
		return nil, fmt.Errorf("%w: empty", ErrInvalidFEN)
	case 4:
		fields = append(fields, "0", "1")
	}
	normalized := strings.Join(fields, " ")

	opt, err := chess.FEN(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return &Position{
		fen:  normalized,
		game: chess.NewGame(opt),
	}, nil
}

// FEN returns the normalised FEN the position was loaded from.
func (p *Position) FEN() string {
	return p.fen
}

// Game returns the underlying rules-library game.
func (p *Position) Game() *chess.Game {
	return p.game
}

// Board returns the piece placement.
func (p *Position) Board() *chess.Board {
	return p.game.Position().Board()
}

// Turn reports the side to move: "white" or "black".
func (p *Position) Turn() string {
	if p.game.Position().Turn() == chess.Black {
		return "black"
	}
	return "white"
}

// LegalMoves lists every legal move in UCI notation.
func (p *Position) LegalMoves() []string {
	pos := p.game.Position()
	valid := pos.ValidMoves()
	out := make([]string, 0, len(valid))
	for _, m := range valid {
		out = append(out, p.UCI(m))
	}
	return out
}

// UCI encodes a rules-library move in UCI notation.
func (p *Position) UCI(m *chess.Move) string {
	return strings.ToLower(chess.UCINotation{}.Encode(p.game.Position(), m))
}

// IsLegal reports whether m is one of the legal moves of the position.
func (p *Position) IsLegal(m Move) bool {
	_, ok := p.find(m)
	return ok
}

// Resolve parses UCI text and returns the matching legal move.
func (p *Position) Resolve(uci string) (*chess.Move, error) {
	m, err := ParseUCI(uci)
	if err != nil {
		return nil, err
	}
	legal, ok := p.find(m)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, p.fen)
	}
	return legal, nil
}

func (p *Position) find(m Move) (*chess.Move, bool) {
	pos := p.game.Position()
	for _, candidate := range pos.ValidMoves() {
		if p.UCI(candidate) == m.String() {
			return candidate, true
		}
	}
	return nil, false
}
