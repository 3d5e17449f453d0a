package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultLightColor = "#f0d9b5"
	DefaultDarkColor  = "#b58863"

	highlightColor = "#f7ec5a"
)

// palette holds the resolved square colors for one render. All colors are
// opaque.
type palette struct {
	light, dark         color.NRGBA
	lightHigh, darkHigh color.NRGBA
}

func newPalette(lightHex, darkHex string) (*palette, error) {
	light, err := parseHexColor(lightHex)
	if err != nil {
		return nil, fmt.Errorf("light color: %w", err)
	}
	dark, err := parseHexColor(darkHex)
	if err != nil {
		return nil, fmt.Errorf("dark color: %w", err)
	}
	high := mustHex(highlightColor)

	return &palette{
		light:     toNRGBA(light),
		dark:      toNRGBA(dark),
		lightHigh: toNRGBA(light.BlendLab(high, 0.5).Clamped()),
		darkHigh:  toNRGBA(dark.BlendLab(high, 0.5).Clamped()),
	}, nil
}

// square returns the fill for a square. a1 is dark.
func (p *palette) square(file, rank int, highlighted bool) color.NRGBA {
	dark := (file+rank)%2 == 0
	switch {
	case dark && highlighted:
		return p.darkHigh
	case dark:
		return p.dark
	case highlighted:
		return p.lightHigh
	default:
		return p.light
	}
}

// parseHexColor parses "#rrggbb" or "#rgb". The leading '#' is optional.
func parseHexColor(hex string) (colorful.Color, error) {
	if len(hex) == 0 {
		return colorful.Color{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	if len(hex) != 7 && len(hex) != 4 {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// canonicalHex rewrites a color as lower case "#rrggbb".
func canonicalHex(hex string) (string, error) {
	c, err := parseHexColor(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func mustHex(hex string) colorful.Color {
	c, err := parseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
