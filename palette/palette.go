// Package palette provides the brush colors fed into the canvas operations.
package palette

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/esimov/pixpaint"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Source yields the color of the next brush stroke.
type Source interface {
	Next() pixpaint.Color
}

// Fixed always returns the same color.
type Fixed pixpaint.Color

// Next implements the Source interface.
func (f Fixed) Next() pixpaint.Color {
	return pixpaint.Color(f)
}

// Uniform picks every channel independently from [0, 255].
type Uniform struct {
	rnd *rand.Rand
}

// NewUniform returns a Uniform source seeded with seed.
func NewUniform(seed int64) *Uniform {
	return &Uniform{rnd: rand.New(rand.NewSource(seed))}
}

// Next implements the Source interface.
func (u *Uniform) Next() pixpaint.Color {
	v := u.rnd.Uint32()
	return pixpaint.Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}

// Happy picks saturated, mid-luminance colors in the HCL space, which look
// pleasant on the grey presets.
type Happy struct {
	rnd *rand.Rand
}

// NewHappy returns a Happy source seeded with seed.
func NewHappy(seed int64) *Happy {
	return &Happy{rnd: rand.New(rand.NewSource(seed))}
}

// Next implements the Source interface.
func (h *Happy) Next() pixpaint.Color {
	hue := h.rnd.Float64() * 360
	chroma := 0.45 + h.rnd.Float64()*0.3
	lum := 0.55 + h.rnd.Float64()*0.3

	return fromColorful(colorful.Hcl(hue, chroma, lum).Clamped())
}

var presets = map[string]pixpaint.Color{
	"black":     pixpaint.Black,
	"grey":      pixpaint.Grey,
	"gray":      pixpaint.Grey,
	"lightgrey": pixpaint.LightGrey,
	"lightgray": pixpaint.LightGrey,
	"white":     pixpaint.White,
}

// Preset looks up one of the background presets by name.
func Preset(name string) (pixpaint.Color, bool) {
	c, ok := presets[strings.ToLower(name)]
	return c, ok
}

// ParseHex converts a "#rrggbb" or "#rgb" string to a color.
func ParseHex(s string) (pixpaint.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pixpaint.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Parse accepts either a preset name or a hex color.
func Parse(s string) (pixpaint.Color, error) {
	if c, ok := Preset(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

func fromColorful(c colorful.Color) pixpaint.Color {
	r, g, b := c.RGB255()
	return pixpaint.Color{R: r, G: g, B: b}
}
