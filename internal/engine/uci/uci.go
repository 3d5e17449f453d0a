// Package uci drives a local UCI chess engine, such as Stockfish.
package uci

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/freeeve/uci"

	"github.com/ironsheep/chess-mcp/internal/board"
	"github.com/ironsheep/chess-mcp/internal/engine"
)

// Config holds local engine settings.
type Config struct {
	Path    string
	Depth   int
	HashMB  int
	Threads int
}

// Engine wraps one engine process. Searches are serialised.
type Engine struct {
	mu    sync.Mutex
	proc  *uci.Engine
	depth int
}

var _ engine.Engine = (*Engine)(nil)

// ErrClosed is returned by NextMove once the engine process has been stopped.
var ErrClosed = errors.New("engine closed")

// New starts the engine binary at cfg.Path and applies its options.
func New(cfg Config) (*Engine, error) {
	if cfg.Depth == 0 {
		cfg.Depth = 12
	}
	if cfg.HashMB == 0 {
		cfg.HashMB = 64
	}
	if cfg.Threads == 0 {
		cfg.Threads = 1
	}

	proc, err := uci.NewEngine(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("start engine %q: %w", cfg.Path, err)
	}

	opts := uci.Options{
		Hash:    cfg.HashMB,
		Threads: cfg.Threads,
		MultiPV: 1,
		Ponder:  false,
		OwnBook: false,
	}
	if err := proc.SetOptions(opts); err != nil {
		proc.Close()
		return nil, fmt.Errorf("set options: %w", err)
	}

	return &Engine{proc: proc, depth: cfg.Depth}, nil
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "UCI" }

// NextMove implements engine.Engine.
func (e *Engine) NextMove(ctx context.Context, pos *board.Position) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.proc == nil {
		return "", ErrClosed
	}
	if err := e.proc.SetFEN(pos.FEN()); err != nil {
		return "", fmt.Errorf("set FEN: %w", err)
	}

	results, err := e.proc.GoDepth(e.depth, uci.HighestDepthOnly)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}

	return bestMove(results)
}

func bestMove(results *uci.Results) (string, error) {
	if results == nil {
		return "", engine.ErrNoMove
	}
	move := results.BestMove
	if move == "" && len(results.Results) > 0 {
		// Fall back to the principal variation of the deepest line.
		best := results.Results[0]
		for _, r := range results.Results {
			if r.Depth > best.Depth {
				best = r
			}
		}
		if len(best.BestMoves) > 0 {
			move = best.BestMoves[0]
		}
	}
	if move == "" || move == "(none)" {
		return "", engine.ErrNoMove
	}
	return move, nil
}

// Close stops the engine process.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.proc != nil {
		e.proc.Close()
		e.proc = nil
	}
	return nil
}
