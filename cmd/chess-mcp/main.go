package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/chess-mcp/internal/config"
	"github.com/ironsheep/chess-mcp/internal/engine"
	"github.com/ironsheep/chess-mcp/internal/engine/stockfishonline"
	"github.com/ironsheep/chess-mcp/internal/engine/uci"
	"github.com/ironsheep/chess-mcp/internal/logx"
	"github.com/ironsheep/chess-mcp/internal/render"
	"github.com/ironsheep/chess-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("chess-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chess-mcp: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("chess-mcp - MCP server for playing chess")
	fmt.Println()
	fmt.Println("Usage: chess-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  CHESS_MCP_LOG_LEVEL=info                 trace, debug, info, warn, error")
	fmt.Println("  CHESS_MCP_TRANSPORT=stdio                stdio or http")
	fmt.Println("  CHESS_MCP_HTTP_ADDR=localhost:8080       listen address for http")
	fmt.Println("  CHESS_MCP_ENGINE=stockfish-online        stockfish-online or uci")
	fmt.Println("  CHESS_MCP_STOCKFISH_ONLINE_URL=...       API endpoint")
	fmt.Println("  CHESS_MCP_STOCKFISH_ONLINE_DEPTH=3       search depth, 1-15")
	fmt.Println("  CHESS_MCP_STOCKFISH_ONLINE_TIMEOUT=10s   request timeout")
	fmt.Println("  CHESS_MCP_UCI_PATH=stockfish             local engine binary")
	fmt.Println("  CHESS_MCP_UCI_DEPTH=12                   local search depth")
	fmt.Println("  CHESS_MCP_UCI_HASH_MB=64                 local engine hash")
	fmt.Println("  CHESS_MCP_UCI_THREADS=1                  local engine threads")
	fmt.Println("  CHESS_MCP_BOARD_SQUARE_SIZE=48           board image square size, 16-128")
	fmt.Println("  CHESS_MCP_BOARD_LIGHT_COLOR=#f0d9b5      light square color")
	fmt.Println("  CHESS_MCP_BOARD_DARK_COLOR=#b58863       dark square color")
	fmt.Println()
	fmt.Println("With the stdio transport the server speaks MCP over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logx.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("chess MCP server starting")

	eng, closeEngine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}
	defer closeEngine()

	renderOpts := render.DefaultOptions()
	renderOpts.SquareSize = cfg.Board.SquareSize
	renderOpts.LightColor = cfg.Board.LightColor
	renderOpts.DarkColor = cfg.Board.DarkColor

	srv, err := server.New(eng, renderOpts, log, Version)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// A stdio session ending (client gone) stops the process too.
		defer stop()
		switch cfg.Transport {
		case config.TransportHTTP:
			return srv.ServeHTTP(ctx, cfg.HTTPAddr)
		default:
			return srv.Run(ctx, &mcp.StdioTransport{})
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		return nil
	})

	return g.Wait()
}

// newEngine builds the configured engine and a function releasing it.
func newEngine(cfg *config.Config, log zerolog.Logger) (engine.Engine, func(), error) {
	switch cfg.Engine {
	case config.EngineUCI:
		eng, err := uci.New(uci.Config{
			Path:    cfg.UCI.Path,
			Depth:   cfg.UCI.Depth,
			HashMB:  cfg.UCI.HashMB,
			Threads: cfg.UCI.Threads,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.UCI.Path).Int("depth", cfg.UCI.Depth).Msg("using local UCI engine")
		return eng, func() {
			if err := eng.Close(); err != nil {
				log.Warn().Err(err).Msg("closing engine")
			}
		}, nil
	default:
		client := stockfishonline.NewClient(cfg.StockfishOnline.URL, cfg.StockfishOnline.Timeout)
		log.Info().Str("url", cfg.StockfishOnline.URL).Int("depth", cfg.StockfishOnline.Depth).Msg("using Stockfish.online")
		return stockfishonline.New(client, cfg.StockfishOnline.Depth), func() {}, nil
	}
}
