package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"slices"

	"github.com/disintegration/imaging"
	"github.com/notnil/chess"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/ironsheep/chess-mcp/internal/board"
)

const (
	DefaultSquareSize = 48
	MinSquareSize     = 16
	MaxSquareSize     = 128

	PerspectiveWhite = "white"
	PerspectiveBlack = "black"
)

// Options controls how a board is drawn.
type Options struct {
	SquareSize  int            // pixels per square; 0 means DefaultSquareSize
	Perspective string         // "white" (default) or "black"
	Highlight   []chess.Square // squares to tint, e.g. the last move
	LightColor  string         // hex; "" means DefaultLightColor
	DarkColor   string         // hex; "" means DefaultDarkColor
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		SquareSize:  DefaultSquareSize,
		Perspective: PerspectiveWhite,
		LightColor:  DefaultLightColor,
		DarkColor:   DefaultDarkColor,
	}
}

// BoardImage is an encoded board.
type BoardImage struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	PNG      []byte `json:"-"`
	MimeType string `json:"mime_type"`
}

// Base64 returns the PNG bytes in standard base64.
func (b *BoardImage) Base64() string {
	return base64.StdEncoding.EncodeToString(b.PNG)
}

// Render draws pos and encodes it as PNG.
func Render(pos *board.Position, opts Options) (*BoardImage, error) {
	img, err := Draw(pos, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &BoardImage{
		Width:    img.Bounds().Dx(),
		Height:   img.Bounds().Dy(),
		PNG:      buf.Bytes(),
		MimeType: "image/png",
	}, nil
}

// Draw renders pos without encoding it. The board is drawn by
// notnil/chess/image as SVG and rasterized at 8*SquareSize pixels.
func Draw(pos *board.Position, opts Options) (*image.NRGBA, error) {
	opts, err := normalize(opts)
	if err != nil {
		return nil, err
	}
	pal, err := newPalette(opts.LightColor, opts.DarkColor)
	if err != nil {
		return nil, err
	}

	doc, err := boardSVG(pos, opts, pal)
	if err != nil {
		return nil, err
	}
	return rasterize(doc, 8*opts.SquareSize)
}

// rasterize draws an svgBoardSize SVG document into a size x size image.
func rasterize(doc []byte, size int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return imaging.Clone(dst), nil
}

func normalize(opts Options) (Options, error) {
	if opts.SquareSize == 0 {
		opts.SquareSize = DefaultSquareSize
	}
	if opts.SquareSize < MinSquareSize || opts.SquareSize > MaxSquareSize {
		return opts, fmt.Errorf("square size %d out of range [%d, %d]", opts.SquareSize, MinSquareSize, MaxSquareSize)
	}
	switch opts.Perspective {
	case "":
		opts.Perspective = PerspectiveWhite
	case PerspectiveWhite, PerspectiveBlack:
	default:
		return opts, fmt.Errorf("unknown perspective %q", opts.Perspective)
	}
	for _, sq := range opts.Highlight {
		if sq < chess.A1 || sq > chess.H8 {
			return opts, fmt.Errorf("highlight square %d out of range", sq)
		}
	}
	if len(opts.Highlight) > 0 {
		sqs := slices.Clone(opts.Highlight)
		slices.Sort(sqs)
		opts.Highlight = slices.Compact(sqs)
	}
	if opts.LightColor == "" {
		opts.LightColor = DefaultLightColor
	}
	if opts.DarkColor == "" {
		opts.DarkColor = DefaultDarkColor
	}
	var err error
	if opts.LightColor, err = canonicalHex(opts.LightColor); err != nil {
		return opts, fmt.Errorf("light color: %w", err)
	}
	if opts.DarkColor, err = canonicalHex(opts.DarkColor); err != nil {
		return opts, fmt.Errorf("dark color: %w", err)
	}
	return opts, nil
}
