// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Transport names.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Engine names.
const (
	EngineStockfishOnline = "stockfish-online"
	EngineUCI             = "uci"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every tunable of the server.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Transport string `env:"TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	Engine    string `env:"ENGINE" envDefault:"stockfish-online"`

	StockfishOnline StockfishOnline `envPrefix:"STOCKFISH_ONLINE_"`
	UCI             UCI             `envPrefix:"UCI_"`
	Board           Board           `envPrefix:"BOARD_"`
}

// StockfishOnline configures the remote engine API.
type StockfishOnline struct {
	URL     string        `env:"URL" envDefault:"https://stockfish.online/api/s/v2.php"`
	Depth   int           `env:"DEPTH" envDefault:"3"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// UCI configures a local UCI engine process.
type UCI struct {
	Path    string `env:"PATH" envDefault:"stockfish"`
	Depth   int    `env:"DEPTH" envDefault:"12"`
	HashMB  int    `env:"HASH_MB" envDefault:"64"`
	Threads int    `env:"THREADS" envDefault:"1"`
}

// Board configures rendered board images.
type Board struct {
	SquareSize int    `env:"SQUARE_SIZE" envDefault:"48"`
	LightColor string `env:"LIGHT_COLOR" envDefault:"#f0d9b5"`
	DarkColor  string `env:"DARK_COLOR" envDefault:"#b58863"`
}

const envPrefix = "CHESS_MCP_"

// Load reads the configuration from the process environment and validates it.
func Load() (*Config, error) {
	return load(env.Options{Prefix: envPrefix})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment. Keys carry the CHESS_MCP_ prefix.
func LoadFrom(vars map[string]string) (*Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return load(env.Options{Prefix: envPrefix, Environment: vars})
}

func load(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("%w: transport %q (want %s or %s)", ErrInvalid, c.Transport, TransportStdio, TransportHTTP)
	}
	if c.Transport == TransportHTTP && c.HTTPAddr == "" {
		return fmt.Errorf("%w: http transport needs an address", ErrInvalid)
	}

	switch c.Engine {
	case EngineStockfishOnline:
		if c.StockfishOnline.URL == "" {
			return fmt.Errorf("%w: stockfish-online url is empty", ErrInvalid)
		}
		// The public API caps depth at 15.
		if c.StockfishOnline.Depth < 1 || c.StockfishOnline.Depth > 15 {
			return fmt.Errorf("%w: stockfish-online depth %d outside 1-15", ErrInvalid, c.StockfishOnline.Depth)
		}
		if c.StockfishOnline.Timeout <= 0 {
			return fmt.Errorf("%w: stockfish-online timeout must be positive", ErrInvalid)
		}
	case EngineUCI:
		if c.UCI.Path == "" {
			return fmt.Errorf("%w: uci engine path is empty", ErrInvalid)
		}
		if c.UCI.Depth < 1 {
			return fmt.Errorf("%w: uci depth %d must be at least 1", ErrInvalid, c.UCI.Depth)
		}
		if c.UCI.HashMB < 1 || c.UCI.Threads < 1 {
			return fmt.Errorf("%w: uci hash and threads must be at least 1", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: engine %q (want %s or %s)", ErrInvalid, c.Engine, EngineStockfishOnline, EngineUCI)
	}

	if c.Board.SquareSize < 16 || c.Board.SquareSize > 128 {
		return fmt.Errorf("%w: board square size %d outside 16-128", ErrInvalid, c.Board.SquareSize)
	}
	return nil
}
