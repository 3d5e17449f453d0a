// Package server exposes chess operations as MCP (Model Context Protocol)
// tools.
//
// Protocol framing, schema generation and transports come from the official
// go-sdk. This package only registers tools and a prompt and adapts them to
// the board, engine and render packages.
//
// # Tools
//
//   - chess_guess_next_move: suggest a move for a FEN position. The text
//     result is the UCI move, or "null" when the engine had no usable move.
//   - chess_is_legal_move: "true" or "false" for a UCI move in a FEN position.
//   - chess_generate_board_image: a PNG image of the board.
//
// Each tool also returns structured content where it has a value to report.
//
// # Prompts
//
//   - start-a-new-game: opens a game in which the assistant checks legality
//     and suggests moves with the tools above.
//
// # Error Handling
//
// Bad input (an invalid FEN or malformed UCI) is a tool error, a result with
// isError set, so the model can read and correct it. Engine failures are not
// errors at all: they are logged and reported as "null". Arguments that fail
// schema validation are rejected by the SDK as invalid params.
//
// # Logging
//
// Every request is tagged with a ULID call_id. Handlers read the tagged
// logger from the context with zerolog.Ctx.
//
// # Usage
//
//	srv, err := server.New(eng, render.DefaultOptions(), logger, version)
//	if err != nil {
//	    return err
//	}
//	return srv.Run(ctx, &mcp.StdioTransport{})
package server
