// Package session drives a canvas from a stream of UI actions.
//
// A Session owns exactly one canvas. Background actions replace it, pointer
// actions mutate it in place, and after every change the canvas is wrapped
// into an image and handed to the Renderer. A frame that cannot be built or
// rendered is logged and skipped, leaving the previous frame on screen.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/esimov/pixpaint"
	"github.com/esimov/pixpaint/blend"
	"github.com/esimov/pixpaint/palette"
	"github.com/esimov/pixpaint/utils"
)

// Defaults used for zero valued Config fields.
const (
	DefaultWidth          = 512
	DefaultHeight         = 512
	DefaultRadius         = 16.0
	DefaultDragBrushSize  = 5
	DefaultPressBrushSize = 9
)

// ErrQuit is returned by Dispatch when it receives a Quit action.
var ErrQuit = errors.New("session: quit")

// Renderer displays a frame. The image is only valid until the next call.
type Renderer interface {
	Render(img image.Image) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(img image.Image) error

// Render implements the Renderer interface.
func (f RendererFunc) Render(img image.Image) error {
	return f(img)
}

// Config holds the session options. An empty BlendMode selects blend.Add
// for the radial tool.
type Config struct {
	Width          int
	Height         int
	Radius         float64
	BlendMode      blend.Mode
	PressTool      Tool
	PressBrushSize int
	DragBrushSize  int
	PaintTopRow    bool
	Colors         palette.Source
	Renderer       Renderer
	Logger         *log.Logger
}

// Session dispatches actions onto its canvas.
type Session struct {
	cfg    Config
	blend  *blend.Blend
	canvas *pixpaint.Canvas
	frames int
}

// New validates the configuration, creates the initial light grey canvas
// and renders the first frame.
func New(cfg Config) (*Session, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Radius == 0 {
		cfg.Radius = DefaultRadius
	}
	if cfg.DragBrushSize == 0 {
		cfg.DragBrushSize = DefaultDragBrushSize
	}
	if cfg.PressBrushSize == 0 {
		cfg.PressBrushSize = DefaultPressBrushSize
	}
	if cfg.Colors == nil {
		cfg.Colors = palette.NewUniform(1)
	}

	if !(cfg.Radius > 0) {
		return nil, fmt.Errorf("%w: %v", pixpaint.ErrInvalidRadius, cfg.Radius)
	}
	if cfg.DragBrushSize < 0 || cfg.PressBrushSize < 0 {
		return nil, fmt.Errorf("invalid brush size: drag %d, press %d", cfg.DragBrushSize, cfg.PressBrushSize)
	}
	if cfg.PressTool != ToolRadial && cfg.PressTool != ToolStamp {
		return nil, fmt.Errorf("invalid press tool: %v", cfg.PressTool)
	}

	b := blend.NewBlend()
	if cfg.BlendMode != "" {
		if err := b.Set(cfg.BlendMode); err != nil {
			return nil, err
		}
	}

	c, err := pixpaint.Fill(cfg.Width, cfg.Height, pixpaint.LightGrey)
	if err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, blend: b, canvas: c}
	s.redraw()

	return s, nil
}

// Canvas returns the current canvas.
func (s *Session) Canvas() *pixpaint.Canvas {
	return s.canvas
}

// Frames returns the number of frames rendered successfully so far.
func (s *Session) Frames() int {
	return s.frames
}

// Dispatch applies a single action. It returns ErrQuit for a Quit action.
func (s *Session) Dispatch(a Action) error {
	switch a := a.(type) {
	case SetBackground:
		c, err := pixpaint.Fill(s.cfg.Width, s.cfg.Height, a.Color)
		if err != nil {
			return err
		}
		s.canvas = c
		s.logf("background set to %v", a.Color)
	case PointerDown:
		s.logf("canvas pressed at x=%d, y=%d", a.Point.X, a.Point.Y)
		if err := s.press(a.Point); err != nil {
			return err
		}
	case PointerDrag:
		if !a.Point.In(s.canvas.Bounds()) {
			return nil
		}
		s.logf("drag at x=%d, y=%d", a.Point.X, a.Point.Y)
		s.canvas.Stamp(a.Point, s.brush(s.cfg.DragBrushSize))
	case PointerMove:
		if a.Point.In(s.canvas.Bounds()) {
			s.logf("move at x=%d, y=%d", a.Point.X, a.Point.Y)
		}
		return nil
	case Quit:
		return ErrQuit
	default:
		return fmt.Errorf("unsupported action: %T", a)
	}
	s.redraw()

	return nil
}

// Run dispatches the actions received on the channel until a Quit action
// arrives, the channel is closed or the context is cancelled.
func (s *Session) Run(ctx context.Context, actions <-chan Action) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-actions:
			if !ok {
				return nil
			}
			if err := s.Dispatch(a); err != nil {
				if errors.Is(err, ErrQuit) {
					s.logf("quitting...")
					return nil
				}
				return err
			}
		}
	}
}

func (s *Session) press(p pixpaint.Point) error {
	switch s.cfg.PressTool {
	case ToolStamp:
		s.canvas.Stamp(p, s.brush(s.cfg.PressBrushSize))
		return nil
	default:
		return s.canvas.RadialWash(p, s.cfg.Radius, s.cfg.Colors.Next(), s.blend.Get())
	}
}

func (s *Session) brush(size int) pixpaint.Brush {
	return pixpaint.Brush{
		Size:        size,
		Color:       s.cfg.Colors.Next(),
		PaintTopRow: s.cfg.PaintTopRow,
	}
}

// redraw wraps the canvas into an image and passes it to the renderer.
// Failures are logged and the frame is dropped.
func (s *Session) redraw() {
	img, err := s.canvas.Image()
	if err != nil {
		s.errorf("error creating image from canvas: %v", err)
		return
	}
	if s.cfg.Renderer == nil {
		s.frames++
		return
	}
	if err := s.cfg.Renderer.Render(img); err != nil {
		s.errorf("error rendering frame: %v", err)
		return
	}
	s.frames++
}

func (s *Session) logf(format string, args ...any) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Printf(format, args...)
	}
}

func (s *Session) errorf(format string, args ...any) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Print(utils.DecorateText(fmt.Sprintf(format, args...), utils.ErrorMessage))
	}
}
