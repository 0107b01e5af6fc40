package pixpaint

import (
	"fmt"
	"image"
	"math"

	"github.com/esimov/pixpaint/blend"
	"github.com/esimov/pixpaint/utils"
)

const bytesPerPixel = 3

// Color is an opaque 24 bit color.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// The preset background colors.
var (
	Black     = Color{0, 0, 0}
	Grey      = Color{127, 127, 127}
	LightGrey = Color{191, 191, 191}
	White     = Color{255, 255, 255}
)

// Point is a pixel coordinate relative to the top-left corner of the canvas.
type Point = image.Point

// Brush describes the square stamp painted by Canvas.Stamp.
type Brush struct {
	Size  int
	Color Color
	// PaintTopRow lets the brush reach the first row of the canvas.
	// By default row 0 is never stamped.
	PaintTopRow bool
}

// Canvas is a mutable RGB raster. Pix holds Width*Height pixels in row-major
// order, three bytes per pixel. The length of Pix never changes.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8
}

// Fill allocates a new canvas of the given size with every pixel set to c.
func Fill(width, height int, c Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	pix := make([]uint8, width*height*bytesPerPixel)
	if c != Black {
		for i := 0; i < len(pix); i += bytesPerPixel {
			pix[i+0] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
		}
	}

	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    pix,
	}, nil
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// Offset returns the index of the first byte of the pixel at (x, y).
func (c *Canvas) Offset(x, y int) int {
	return (y*c.Width + x) * bytesPerPixel
}

// At returns the color of the pixel at (x, y), or the zero Color if the
// coordinate is outside of the canvas.
func (c *Canvas) At(x, y int) Color {
	if !image.Pt(x, y).In(c.Bounds()) {
		return Color{}
	}
	i := c.Offset(x, y)
	return Color{c.Pix[i], c.Pix[i+1], c.Pix[i+2]}
}

// Set changes the color of a single pixel. Writes outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col Color) {
	if !image.Pt(x, y).In(c.Bounds()) {
		return
	}
	i := c.Offset(x, y)
	c.Pix[i+0] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	pix := make([]uint8, len(c.Pix))
	copy(pix, c.Pix)

	return &Canvas{
		Width:  c.Width,
		Height: c.Height,
		Pix:    pix,
	}
}

// Stamp paints a solid square of b.Size pixels per side centered on p and
// returns the number of pixels written. The square spans
// [p - Size/2, p - Size/2 + Size) on both axes. Pixels falling outside the
// canvas are skipped, so a stamp far away from the canvas writes nothing.
func (c *Canvas) Stamp(p Point, b Brush) int {
	if b.Size <= 0 {
		return 0
	}
	top := 1
	if b.PaintTopRow {
		top = 0
	}

	x0 := p.X - b.Size/2
	y0 := p.Y - b.Size/2
	x1 := utils.Min(x0+b.Size, c.Width)
	y1 := utils.Min(y0+b.Size, c.Height)
	x0 = utils.Max(x0, 0)
	y0 = utils.Max(y0, top)
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	for y := y0; y < y1; y++ {
		i := c.Offset(x0, y)
		for x := x0; x < x1; x++ {
			c.Pix[i+0] = b.Color.R
			c.Pix[i+1] = b.Color.G
			c.Pix[i+2] = b.Color.B
			i += bytesPerPixel
		}
	}
	return (x1 - x0) * (y1 - y0)
}

// RadialBlend adds a radial light of color col centered on p to every pixel
// of the canvas. Pixels within radius of p receive the full color, pixels
// farther away receive it scaled by (radius/distance)^2. The contribution is
// added to the existing value and saturates at 255, so repeated calls keep
// brightening the canvas.
func (c *Canvas) RadialBlend(p Point, radius float64, col Color) error {
	return c.RadialWash(p, radius, col, blend.Add)
}

// RadialWash is RadialBlend with a configurable blend mode.
// The canvas is left untouched when an error is returned.
func (c *Canvas) RadialWash(p Point, radius float64, col Color, mode blend.Mode) error {
	r2 := radius * radius
	if !(radius > 0) || r2 == 0 || math.IsInf(r2, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if !utils.Contains(blend.Modes, mode) {
		return fmt.Errorf("%w: %q", ErrInvalidBlendMode, mode)
	}

	var (
		cr = float64(col.R)
		cg = float64(col.G)
		cb = float64(col.B)
		i  int
	)
	// float64 distances: centers far outside the canvas must not overflow.
	for y := 0; y < c.Height; y++ {
		dy := float64(y) - float64(p.Y)
		for x := 0; x < c.Width; x++ {
			dx := float64(x) - float64(p.X)
			brightness := 1.0
			if d2 := (dx*dx + dy*dy) / r2; d2 > 1 {
				brightness = 1 / d2
			}
			c.Pix[i+0] = mode.Channel(c.Pix[i+0], brightness*cr)
			c.Pix[i+1] = mode.Channel(c.Pix[i+1], brightness*cg)
			c.Pix[i+2] = mode.Channel(c.Pix[i+2], brightness*cb)
			i += bytesPerPixel
		}
	}
	return nil
}
