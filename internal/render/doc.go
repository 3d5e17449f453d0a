// Package render draws chess positions as PNG images.
//
// The board itself is drawn by github.com/notnil/chess/image, which emits
// SVG. The SVG is rasterized with oksvg and rasterx straight at the requested
// size, so pieces stay sharp at every square size, and the result is PNG
// encoded with imaging. A board is 8x8 squares of Options.SquareSize pixels
// with no border.
//
// # Coordinate System
//
// Image pixels follow the usual convention: (0,0) is the top-left corner, X
// grows rightward and Y grows downward. Board squares follow chess
// convention: file a-h left to right and rank 1-8 bottom to top, as seen from
// the side given by Options.Perspective. From black's side the board is
// rotated 180 degrees, so h1 is at the top-left and a8 at the bottom-right.
//
// # Labels
//
// The SVG carries file and rank labels as text elements. oksvg does not draw
// text, so the PNG has no coordinate labels.
//
// # Thread Safety
//
// Render is stateless and can be called concurrently. Cache is safe for
// concurrent use.
package render
