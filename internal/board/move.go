package board

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notnil/chess"
)

var uciPattern = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// Move is a syntactically valid UCI move such as "e2e4" or "e7e8q".
// Legality depends on a position; see Position.IsLegal.
type Move struct {
	uci string
}

// ParseUCI validates UCI syntax. Input is case-insensitive and surrounding
// whitespace is ignored.
func ParseUCI(s string) (Move, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if !uciPattern.MatchString(norm) {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	return Move{uci: norm}, nil
}

func (m Move) String() string {
	return m.uci
}

// From returns the origin square name, e.g. "e2".
func (m Move) From() string {
	return m.uci[0:2]
}

// To returns the destination square name, e.g. "e4".
func (m Move) To() string {
	return m.uci[2:4]
}

// Promotion returns the promotion piece letter, or "" for none.
func (m Move) Promotion() string {
	if len(m.uci) == 5 {
		return m.uci[4:]
	}
	return ""
}

// Squares returns the origin and destination as rules-library squares.
func (m Move) Squares() (chess.Square, chess.Square) {
	return squareOf(m.From()), squareOf(m.To())
}

// squareOf converts a validated square name. A1 is 0, H8 is 63.
func squareOf(name string) chess.Square {
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	return chess.Square(file + rank*8)
}
