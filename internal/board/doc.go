// Package board adapts the chess rules library to the tool surface.
//
// Positions arrive as FEN text and moves as UCI text. Everything the server
// needs to know about them (is the FEN loadable, which moves are legal, how
// a move is spelled in UCI) is answered by github.com/notnil/chess; this
// package only normalises input and maps library failures onto the sentinel
// errors below.
//
// # Errors
//
//   - ErrInvalidFEN: the FEN could not be loaded by the rules library
//   - ErrInvalidMove: the move text is not UCI notation
//   - ErrIllegalMove: the move is UCI notation but not legal in the position
package board
