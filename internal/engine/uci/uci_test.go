package uci

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/freeeve/uci"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/chess-mcp/internal/board"
	"github.com/ironsheep/chess-mcp/internal/engine"
)

func TestBestMove(t *testing.T) {
	tests := []struct {
		name    string
		results *uci.Results
		want    string
	}{
		{"nil results", nil, ""},
		{"best move", &uci.Results{BestMove: "e2e4"}, "e2e4"},
		{"no legal move", &uci.Results{BestMove: "(none)"}, ""},
		{
			name: "deepest principal variation",
			results: &uci.Results{Results: []uci.ScoreResult{
				{Depth: 4, BestMoves: []string{"d2d4"}},
				{Depth: 9, BestMoves: []string{"g1f3", "g8f6"}},
			}},
			want: "g1f3",
		},
		{"empty", &uci.Results{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bestMove(tt.results)
			if tt.want == "" {
				assert.ErrorIs(t, err, engine.ErrNoMove)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_MissingBinary(t *testing.T) {
	_, err := New(Config{Path: filepath.Join(t.TempDir(), "no-such-engine")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-engine")
}

func TestEngine_Stockfish(t *testing.T) {
	path, err := exec.LookPath("stockfish")
	if err != nil {
		t.Skip("stockfish not installed")
	}

	eng, err := New(Config{Path: path, Depth: 6})
	require.NoError(t, err)
	defer eng.Close()

	// Scholar's mate is one move away.
	pos, err := board.Parse("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	move, ok := engine.Guess(context.Background(), eng, pos, zerolog.Nop())
	require.True(t, ok)
	assert.Equal(t, "h5f7", move)
}

func TestEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos, err := board.Parse(board.StartFEN)
	require.NoError(t, err)

	// The process is never touched when the context is already done.
	eng := &Engine{}
	_, err = eng.NextMove(ctx, pos)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_NextMoveAfterClose(t *testing.T) {
	pos, err := board.Parse(board.StartFEN)
	require.NoError(t, err)

	eng := &Engine{depth: 4}
	require.NoError(t, eng.Close())
	require.NoError(t, eng.Close())

	require.NotPanics(t, func() {
		_, err = eng.NextMove(context.Background(), pos)
	})
	assert.ErrorIs(t, err, ErrClosed)

	_, ok := engine.Guess(context.Background(), eng, pos, zerolog.Nop())
	assert.False(t, ok)
}
