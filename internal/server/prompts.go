package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PromptStartNewGame is the name of the game-opening prompt.
const PromptStartNewGame = "start-a-new-game"

const startNewGameText = "Let's play a chess game. Check that each move is legal. Suggest the best move to play."

func startNewGamePrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        PromptStartNewGame,
		Description: "Start a new chess game with the assistant",
	}
}

func (s *Server) handleStartNewGame(ctx context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	log := s.logger(ctx)
	log.Debug().Msg("start a new game")
	return &mcp.GetPromptResult{
		Description: "Start a new chess game",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: startNewGameText},
		}},
	}, nil
}
