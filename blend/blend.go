// Package blend implements the per-channel blend modes used for mixing
// a paint contribution with the pixel already present on the canvas.
//
// The radial brush uses Add, which accumulates brightness on every
// application and saturates at 255. The remaining modes follow the
// usual separable blend formulas applied on normalized channel values.
package blend

import (
	"fmt"

	"github.com/esimov/pixpaint/utils"
)

// Mode names a separable blend function.
type Mode string

const (
	Add      Mode = "add"
	Lighten  Mode = "lighten"
	Darken   Mode = "darken"
	Multiply Mode = "multiply"
	Screen   Mode = "screen"
	Overlay  Mode = "overlay"
)

// Modes lists every supported blend mode.
var Modes = []Mode{Add, Lighten, Darken, Multiply, Screen, Overlay}

// Blend holds the currently active blend mode.
type Blend struct {
	mode Mode
}

// NewBlend initializes a new Blend using the additive mode.
func NewBlend() *Blend {
	return &Blend{mode: Add}
}

// Set activates one of the supported blend modes.
func (b *Blend) Set(mode Mode) error {
	if !utils.Contains(Modes, mode) {
		return fmt.Errorf("unsupported blend mode: %q", mode)
	}
	b.mode = mode
	return nil
}

// Get returns the currently active blend mode.
func (b *Blend) Get() Mode {
	if len(b.mode) > 0 {
		return b.mode
	}
	return Add
}

// Channel combines the existing channel value dst with the contribution src
// (expressed on the 0-255 scale, possibly fractional). The result is clamped
// to [0, 255] and truncated toward zero.
func (m Mode) Channel(dst uint8, src float64) uint8 {
	d := float64(dst)
	var v float64

	switch m {
	case Lighten:
		v = utils.Max(d, src)
	case Darken:
		v = utils.Min(d, src)
	case Multiply:
		v = d * src / 255
	case Screen:
		v = 255 - (255-d)*(255-src)/255
	case Overlay:
		if d <= 127.5 {
			v = 2 * d * src / 255
		} else {
			v = 255 - 2*(255-d)*(255-src)/255
		}
	default:
		v = d + src
	}
	return uint8(utils.Clamp(v, 0, 255))
}
