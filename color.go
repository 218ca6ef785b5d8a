package drawaria

import (
	"fmt"
	"image/color"
)

// HexColor returns the canonical form of a color as used in drawing
// commands: an uppercase, #-prefixed, 6-digit hex string. Alpha is
// excluded; opacity is the encoder's concern, not the codec's.
func HexColor(c color.Color) string {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", nrgba.R, nrgba.G, nrgba.B)
}

// ParseHex is the inverse of HexColor. The returned color is fully opaque.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
