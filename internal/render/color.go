package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an opaque sRGB triple parsed from a request hex string.
type Color struct {
	R, G, B uint8
}

// ParseHexColor accepts "#RRGGBB" or "RRGGBB".
func ParseHexColor(s string) (Color, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hexStr) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex renders the color back to the "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA converts the color to the image/color type with the given alpha.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}
