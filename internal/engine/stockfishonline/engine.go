package stockfishonline

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ironsheep/chess-mcp/internal/board"
	"github.com/ironsheep/chess-mcp/internal/engine"
)

var bestMovePattern = regexp.MustCompile(`bestmove\s(\S+)`)

// Engine adapts Client to engine.Engine.
type Engine struct {
	client *Client
	depth  int
}

var _ engine.Engine = (*Engine)(nil)

// New returns an Engine searching to depth.
func New(client *Client, depth int) *Engine {
	return &Engine{client: client, depth: depth}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "Stockfish.online" }

// NextMove implements engine.Engine.
func (e *Engine) NextMove(ctx context.Context, pos *board.Position) (string, error) {
	resp, err := e.client.GetNextMove(ctx, pos.FEN(), e.depth)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("%w: %s", engine.ErrNoMove, resp.Data)
	}
	return ExtractMove(resp.BestMove)
}

// ExtractMove pulls the move out of a "bestmove <uci> ponder <uci>" line.
func ExtractMove(bestmove string) (string, error) {
	m := bestMovePattern.FindStringSubmatch(bestmove)
	if m == nil {
		return "", fmt.Errorf("%w: unexpected bestmove %q", engine.ErrNoMove, bestmove)
	}
	return m[1], nil
}
