package server

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ironsheep/chess-mcp/internal/render"
)

// Tool names.
const (
	ToolGuessNextMove      = "chess_guess_next_move"
	ToolIsLegalMove        = "chess_is_legal_move"
	ToolGenerateBoardImage = "chess_generate_board_image"
)

// GuessNextMoveInput is the argument object of chess_guess_next_move.
type GuessNextMoveInput struct {
	FEN string `json:"fen" jsonschema:"Chess position in Forsyth-Edwards Notation"`
}

// GuessNextMoveOutput is the structured result of chess_guess_next_move.
type GuessNextMoveOutput struct {
	Move string `json:"move,omitempty" jsonschema:"Suggested move in UCI notation. Absent when no move was found"`
}

// IsLegalMoveInput is the argument object of chess_is_legal_move.
type IsLegalMoveInput struct {
	FEN  string `json:"fen" jsonschema:"Chess position in Forsyth-Edwards Notation"`
	Move string `json:"move" jsonschema:"Move in UCI notation, e.g. e2e4 or e7e8q"`
}

// IsLegalMoveOutput is the structured result of chess_is_legal_move.
type IsLegalMoveOutput struct {
	Legal bool `json:"legal" jsonschema:"Whether the move is legal in the position"`
}

// GenerateBoardImageInput is the argument object of chess_generate_board_image.
type GenerateBoardImageInput struct {
	FEN           string `json:"fen" jsonschema:"Chess position in Forsyth-Edwards Notation"`
	Perspective   string `json:"perspective,omitempty" jsonschema:"Side shown at the bottom of the board. Defaults to white"`
	HighlightMove string `json:"highlight_move,omitempty" jsonschema:"Optional UCI move whose squares are highlighted, e.g. the last move played"`
}

func boolPtr(b bool) *bool { return &b }

func guessNextMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolGuessNextMove,
		Description: "Suggest the best next move for a chess position given in FEN. Returns the move in UCI notation, or null when no move could be found.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Guess next move",
			ReadOnlyHint:  true,
			OpenWorldHint: boolPtr(true),
		},
	}
}

func isLegalMoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        ToolIsLegalMove,
		Description: "Check whether a move in UCI notation is legal in a chess position given in FEN. Returns true or false.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Is legal move",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}
}

func generateBoardImageTool() (*mcp.Tool, error) {
	schema, err := jsonschema.For[GenerateBoardImageInput](nil)
	if err != nil {
		return nil, fmt.Errorf("board image schema: %w", err)
	}
	perspective, ok := schema.Properties["perspective"]
	if !ok {
		return nil, fmt.Errorf("board image schema: no perspective property")
	}
	perspective.Enum = []any{render.PerspectiveWhite, render.PerspectiveBlack}

	return &mcp.Tool{
		Name:        ToolGenerateBoardImage,
		Description: "Draw a chess position given in FEN as a PNG image of the board.",
		InputSchema: schema,
		Annotations: &mcp.ToolAnnotations{
			Title:          "Generate board image",
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, nil
}
