package logx

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"default", "", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case", "WARN", zerolog.WarnLevel},
		{"padded", "  error ", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := newLogger(&bytes.Buffer{}, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNewLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	require.NoError(t, err)

	logger.Info().Str("fen", "8/8/8/8/8/8/8/8 w - - 0 1").Msg("hello")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "fen=")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "logx_test.go:")
}

func TestNewLogger_Concurrent(t *testing.T) {
	const n = 8
	bufs := make([]bytes.Buffer, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(buf *bytes.Buffer) {
			defer wg.Done()
			logger, err := newLogger(buf, "info")
			if err != nil {
				t.Error(err)
				return
			}
			logger.Info().Msg("ready")
		}(&bufs[i])
	}
	wg.Wait()

	for i := range bufs {
		out := bufs[i].String()
		assert.Contains(t, out, "ready")
		assert.Contains(t, out, "logx_test.go:")
	}
}

func TestShortCaller(t *testing.T) {
	got := shortCaller(0, "/src/chess-mcp/internal/server/handlers.go", 42)
	assert.Equal(t, "handlers.go:42", strings.TrimSpace(got))
	assert.Len(t, got, 24)
}
