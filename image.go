package pixpaint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// RGBModel converts any color into the opaque Color used by the canvas.
// Translucent colors are flattened against black.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// RGBImage is a displayable view over an interleaved RGB pixel buffer.
// It shares its memory with the buffer it was created from.
type RGBImage struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

var _ draw.Image = (*RGBImage)(nil)

// NewImage wraps pix into an RGBImage after checking that its length
// matches width*height*3. A mismatch returns an *ImageSizeError.
func NewImage(pix []uint8, width, height int) (*RGBImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height*bytesPerPixel {
		return nil, &ImageSizeError{Width: width, Height: height, Len: len(pix)}
	}

	return &RGBImage{
		Pix:    pix,
		Stride: width * bytesPerPixel,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Image returns a displayable view of the canvas.
func (c *Canvas) Image() (*RGBImage, error) {
	return NewImage(c.Pix, c.Width, c.Height)
}

// ColorModel implements the image.Image interface.
func (p *RGBImage) ColorModel() color.Model { return RGBModel }

// Bounds implements the image.Image interface.
func (p *RGBImage) Bounds() image.Rectangle { return p.Rect }

// At implements the image.Image interface.
func (p *RGBImage) At(x, y int) color.Color {
	return p.RGBAt(x, y)
}

// RGBAt returns the canvas color at (x, y).
func (p *RGBImage) RGBAt(x, y int) Color {
	if !(image.Pt(x, y).In(p.Rect)) {
		return Color{}
	}
	i := p.PixOffset(x, y)
	return Color{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

// Set implements the draw.Image interface.
func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Pt(x, y).In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := RGBModel.Convert(c).(Color)
	p.Pix[i+0] = c1.R
	p.Pix[i+1] = c1.G
	p.Pix[i+2] = c1.B
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *RGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*bytesPerPixel
}

// Opaque reports that every pixel is fully opaque.
func (p *RGBImage) Opaque() bool { return true }

// NRGBA converts the image to *image.NRGBA with a fully opaque alpha channel.
func (p *RGBImage) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(p.Rect.Sub(p.Rect.Min))
	dx, dy := p.Rect.Dx(), p.Rect.Dy()

	for y := 0; y < dy; y++ {
		si := y * p.Stride
		di := dst.PixOffset(0, y)
		for x := 0; x < dx; x++ {
			dst.Pix[di+0] = p.Pix[si+0]
			dst.Pix[di+1] = p.Pix[si+1]
			dst.Pix[di+2] = p.Pix[si+2]
			dst.Pix[di+3] = 0xff
			si += bytesPerPixel
			di += 4
		}
	}
	return dst
}
