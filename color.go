package turtle

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
//
// Color is the canonical form every color input is normalized to, whether
// it came from a hex string, a CSS name or an image/color value.
type Color struct {
	R, G, B, A float64
}

// Verify Color implements color.Color.
var _ color.Color = Color{}

// RGBA implements color.Color, returning alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if tc, ok := c.(Color); ok {
		return tc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string or a CSS color name, returning
// opaque black if s cannot be parsed. Use ParseColor to detect errors.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		return Black
	}
	return c
}

// ParseColor parses a color string. Supported forms:
//   - hex with or without '#': "RGB", "RGBA", "RRGGBB", "RRGGBBAA"
//   - CSS/SVG color names such as "steelblue", plus "transparent"
//
// Parsing is case-insensitive and ignores surrounding spaces.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "transparent" {
		return Transparent, nil
	}
	if named, ok := colornames.Map[key]; ok {
		return FromColor(named), nil
	}

	hex := strings.TrimPrefix(key, "#")
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}

	var r, g, b uint32
	a := uint32(255)
	switch len(hex) {
	case 3: // RGB
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4: // RGBA
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex returns the color as "#rrggbb", or "#rrggbbaa" if it is not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Rotate returns c with its hue rotated by deg degrees.
func (c Color) Rotate(deg float64) Color {
	h, s, l := c.toColorful().Hsl()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	return c.withHsl(h, s, l)
}

// Lighten returns c with its HSL lightness increased by ratio of itself.
// Lighten(0.5) turns a lightness of 0.4 into 0.6.
func (c Color) Lighten(ratio float64) Color {
	h, s, l := c.toColorful().Hsl()
	return c.withHsl(h, s, clamp01(l+l*ratio))
}

// Darken returns c with its HSL lightness decreased by ratio of itself.
func (c Color) Darken(ratio float64) Color {
	h, s, l := c.toColorful().Hsl()
	return c.withHsl(h, s, clamp01(l-l*ratio))
}

// Saturate returns c with its HSL saturation increased by ratio of itself.
func (c Color) Saturate(ratio float64) Color {
	h, s, l := c.toColorful().Hsl()
	return c.withHsl(h, clamp01(s+s*ratio), l)
}

// Desaturate returns c with its HSL saturation decreased by ratio of itself.
func (c Color) Desaturate(ratio float64) Color {
	h, s, l := c.toColorful().Hsl()
	return c.withHsl(h, clamp01(s-s*ratio), l)
}

// Fade returns c with its alpha decreased by ratio of itself.
func (c Color) Fade(ratio float64) Color {
	c.A = clamp01(c.A - c.A*ratio)
	return c
}

// Negate returns the RGB complement of c.
func (c Color) Negate() Color {
	return Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// Mix blends c towards other by weight in [0, 1], in RGB space.
func (c Color) Mix(other Color, weight float64) Color {
	weight = clamp01(weight)
	m := c.toColorful().BlendRgb(other.toColorful(), weight)
	return Color{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*weight}
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	return Black.withHsl(h, s, l)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// withHsl replaces the RGB channels of c from HSL, keeping alpha.
func (c Color) withHsl(h, s, l float64) Color {
	out := colorful.Hsl(h, s, l).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f'
}

// parseHex parses lowercase hex digits already validated by isHexDigit.
func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		if c <= '9' {
			v += uint32(c - '0')
		} else {
			v += uint32(c - 'a' + 10)
		}
	}
	return v
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
