package server

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/ironsheep/chess-mcp/internal/board"
	"github.com/ironsheep/chess-mcp/internal/engine"
	"github.com/ironsheep/chess-mcp/internal/render"
)

// handleGuessNextMove asks the engine for a move. A missing move is not an
// error: the text result is the literal "null".
func (s *Server) handleGuessNextMove(ctx context.Context, _ *mcp.CallToolRequest, in GuessNextMoveInput) (*mcp.CallToolResult, GuessNextMoveOutput, error) {
	log := s.logger(ctx)
	log.Debug().Str("fen", in.FEN).Msg("guess next move")

	pos, err := board.Parse(in.FEN)
	if err != nil {
		return nil, GuessNextMoveOutput{}, err
	}

	move, ok := engine.Guess(ctx, s.engine, pos, log)
	text := move
	if !ok {
		text = "null"
	}
	log.Info().Msgf("%s => %s", pos.FEN(), text)

	return textResult(text), GuessNextMoveOutput{Move: move}, nil
}

func (s *Server) handleIsLegalMove(ctx context.Context, _ *mcp.CallToolRequest, in IsLegalMoveInput) (*mcp.CallToolResult, IsLegalMoveOutput, error) {
	log := s.logger(ctx)

	pos, err := board.Parse(in.FEN)
	if err != nil {
		return nil, IsLegalMoveOutput{}, err
	}
	m, err := board.ParseUCI(in.Move)
	if err != nil {
		return nil, IsLegalMoveOutput{}, err
	}

	legal := pos.IsLegal(m)
	answer := "no"
	if legal {
		answer = "yes"
	}
	log.Info().Msgf("Is move %s legal in FEN %s? %s", m, pos.FEN(), answer)

	return textResult(strconv.FormatBool(legal)), IsLegalMoveOutput{Legal: legal}, nil
}

// handleGenerateBoardImage renders the board. Every failure is reported as
// a tool error with a fixed prefix, never as a protocol error.
func (s *Server) handleGenerateBoardImage(ctx context.Context, _ *mcp.CallToolRequest, in GenerateBoardImageInput) (*mcp.CallToolResult, any, error) {
	log := s.logger(ctx)

	img, err := s.boardImage(in)
	if err != nil {
		log.Warn().Err(err).Str("fen", in.FEN).Msg("board image failed")
		return errorResult(fmt.Sprintf("Failed to generate board image: %v", err)), nil, nil
	}
	log.Debug().Str("fen", in.FEN).Int("bytes", len(img.PNG)).Msg("board image generated")

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{
			Data:     img.PNG,
			MIMEType: img.MimeType,
			Annotations: &mcp.Annotations{
				Audience: []mcp.Role{"user"},
				Priority: 1.0,
			},
		}},
	}, nil, nil
}

func (s *Server) boardImage(in GenerateBoardImageInput) (*render.BoardImage, error) {
	pos, err := board.Parse(in.FEN)
	if err != nil {
		return nil, err
	}

	opts := s.render
	if in.Perspective != "" {
		opts.Perspective = in.Perspective
	}
	if in.HighlightMove != "" {
		m, err := board.ParseUCI(in.HighlightMove)
		if err != nil {
			return nil, fmt.Errorf("highlight: %w", err)
		}
		from, to := m.Squares()
		opts.Highlight = append(opts.Highlight[:0:0], from, to)
	}

	return s.images.Render(pos, opts)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

// logger returns the request-scoped logger set by the logging middleware,
// or the server logger outside a request.
func (s *Server) logger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return s.log
}
