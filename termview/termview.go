// Package termview renders canvas frames into a 24-bit color terminal.
//
// Each terminal cell shows two vertically stacked pixels: the upper one as the
// foreground of an upper half block and the lower one as its background.
package termview

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/esimov/pixpaint/utils"
	xdraw "golang.org/x/image/draw"
)

// Filter selects the resampling used to fit a frame into the terminal.
type Filter string

const (
	Nearest Filter = "nearest"
	Lanczos Filter = "lanczos"
)

const (
	upperHalfBlock = "▀"
	resetColor     = "\x1b[0m"
	cursorHome     = "\x1b[H"
)

// Renderer writes frames to Out. Frames larger than Cols x Rows cells are
// scaled down keeping their aspect ratio; smaller frames are drawn as is.
type Renderer struct {
	Out    io.Writer
	Cols   int
	Rows   int
	Filter Filter
	// Live moves the cursor home before every frame so that consecutive
	// frames overwrite each other.
	Live bool
}

// Render implements the session.Renderer interface.
func (r *Renderer) Render(img image.Image) error {
	if r.Cols <= 0 || r.Rows <= 0 {
		return fmt.Errorf("invalid terminal size: %dx%d", r.Cols, r.Rows)
	}
	src := r.fit(img)

	w := bufio.NewWriter(r.Out)
	if r.Live {
		w.WriteString(cursorHome)
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := src.NRGBAAt(x, y)
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", top.R, top.G, top.B)
			if y+1 < b.Max.Y {
				bottom := src.NRGBAAt(x, y+1)
				fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", bottom.R, bottom.G, bottom.B)
			} else {
				w.WriteString("\x1b[49m")
			}
			w.WriteString(upperHalfBlock)
		}
		w.WriteString(resetColor + "\n")
	}
	return w.Flush()
}

// fit resamples img so that it fits into the terminal area, two pixel rows per cell.
func (r *Renderer) fit(img image.Image) *image.NRGBA {
	b := img.Bounds()
	nw, nh := Fit(b.Dx(), b.Dy(), r.Cols, r.Rows*2)

	switch r.Filter {
	case Lanczos:
		return imaging.Fit(img, nw, nh, imaging.Lanczos)
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		return dst
	}
}

// Fit returns the largest size not exceeding maxW x maxH with the aspect
// ratio of w x h. Sizes already within bounds are returned unchanged.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := utils.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))

	nw := utils.Max(int(float64(w)*ratio+0.5), 1)
	nh := utils.Max(int(float64(h)*ratio+0.5), 1)
	return utils.Min(nw, maxW), utils.Min(nh, maxH)
}
