package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/notnil/chess"
	chessimage "github.com/notnil/chess/image"

	"github.com/ironsheep/chess-mcp/internal/board"
)

// svgBoardSize is the edge length, in SVG user units, of the board
// chessimage draws: eight squares of 45 units.
const svgBoardSize = 360

// pieceOpen matches the wrapper chessimage puts around each piece. It places
// the piece by shifting a nested viewBox, which oksvg does not support.
var pieceOpen = regexp.MustCompile(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="360" height="360" viewBox="(-?\d+) (-?\d+) 360 360">`)

// boardSVG writes pos as an SVG document ready for rasterizing.
func boardSVG(pos *board.Position, opts Options, pal *palette) ([]byte, error) {
	side := chess.White
	if opts.Perspective == PerspectiveBlack {
		side = chess.Black
	}
	encOpts := []func(*chessimage.Encoder){
		chessimage.SquareColors(pal.light, pal.dark),
		chessimage.Perspective(side),
	}
	for _, sq := range opts.Highlight {
		fill := pal.square(int(sq.File()), int(sq.Rank()), true)
		encOpts = append(encOpts, chessimage.MarkSquares(fill, sq))
	}

	var buf bytes.Buffer
	if err := chessimage.SVG(&buf, pos.Board(), encOpts...); err != nil {
		return nil, fmt.Errorf("failed to write board svg: %w", err)
	}
	return flattenPieces(buf.String()), nil
}

// flattenPieces replaces every nested piece <svg> with a translated group.
// The outermost </svg> is the only closing tag left as is.
func flattenPieces(doc string) []byte {
	doc = pieceOpen.ReplaceAllStringFunc(doc, func(open string) string {
		m := pieceOpen.FindStringSubmatch(open)
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		return fmt.Sprintf(`<g transform="translate(%d,%d)">`, -x, -y)
	})

	end := strings.LastIndex(doc, "</svg>")
	if end < 0 {
		return []byte(doc)
	}
	return []byte(strings.ReplaceAll(doc[:end], "</svg>", "</g>") + doc[end:])
}
