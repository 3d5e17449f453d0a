package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ironsheep/chess-mcp/internal/engine"
	"github.com/ironsheep/chess-mcp/internal/render"
)

// Name is the implementation name reported to clients.
const Name = "chess-mcp"

const shutdownTimeout = 5 * time.Second

// Server exposes chess tools over MCP.
type Server struct {
	mcp    *mcp.Server
	engine engine.Engine
	render render.Options
	images *render.Cache
	log    zerolog.Logger
}

// New creates a server that asks eng for moves and draws boards with
// renderOpts. Tool and prompt registration happens here.
func New(eng engine.Engine, renderOpts render.Options, log zerolog.Logger, version string) (*Server, error) {
	s := &Server{
		engine: eng,
		render: renderOpts,
		images: render.NewCache(render.DefaultCacheSize),
		log:    log,
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: "Chess tools: suggest a move, check move legality and draw the board. Positions are FEN strings and moves are UCI.",
	})
	s.mcp.AddReceivingMiddleware(s.logRequests)

	mcp.AddTool(s.mcp, guessNextMoveTool(), s.handleGuessNextMove)
	mcp.AddTool(s.mcp, isLegalMoveTool(), s.handleIsLegalMove)
	imageTool, err := generateBoardImageTool()
	if err != nil {
		return nil, err
	}
	mcp.AddTool(s.mcp, imageTool, s.handleGenerateBoardImage)

	s.mcp.AddPrompt(startNewGamePrompt(), s.handleStartNewGame)

	return s, nil
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves a single session on t until the client disconnects or ctx is
// done. Use &mcp.StdioTransport{} for stdio.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.log.Info().Str("engine", s.engine.Name()).Msg("serving MCP")
	if err := s.mcp.Run(ctx, t); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp session: %w", err)
	}
	return nil
}

// Handler returns the streamable HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
}

// ServeHTTP listens on addr and serves the streamable HTTP transport until
// ctx is done, then shuts down gracefully.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Str("engine", s.engine.Name()).Msg("serving MCP over HTTP")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info().Msg("shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// Open event streams can outlive the grace period.
			s.log.Warn().Err(err).Msg("graceful shutdown incomplete, closing connections")
			return srv.Close()
		}
		return nil
	}
}
