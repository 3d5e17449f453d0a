// Package logx builds the process logger.
//
// Logs always go to stderr: when the server runs over stdio, stdout carries
// the MCP protocol stream and must not contain anything else.
package logx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.CallerMarshalFunc = shortCaller
}

// shortCaller trims the caller to file:line and pads it so messages line up.
func shortCaller(_ uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%-24s", fmt.Sprintf("%s:%d", short, line))
}

// NewLogger returns a zerolog console logger on stderr at the given level.
// An empty level means info.
func NewLogger(level string) (zerolog.Logger, error) {
	return newLogger(os.Stderr, level)
}

func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level = strings.TrimSpace(level); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Caller().Logger(), nil
}
