package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/pixpaint"
	"github.com/esimov/pixpaint/blend"
	"github.com/esimov/pixpaint/palette"
	"github.com/esimov/pixpaint/session"
	"github.com/esimov/pixpaint/termview"
	"github.com/esimov/pixpaint/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬─┐ ┬┌─┐┌─┐┬┌┐┌┌┬┐
├─┘│┌┴┬┘├─┘├─┤││││ │
┴  ┴┴ └─┴  ┴ ┴┴┘└┘ ┴

Raster painting playground.
    Version: %s

Replays an action script (bg, down, drag, move, quit) onto a canvas
and draws the result in the terminal.

`

// pipeName is the file name that indicates stdin is being used.
const pipeName = "-"

// Fallback terminal size used when stdout is not a terminal.
const (
	defaultCols = 80
	defaultRows = 24
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	source     = flag.String("in", pipeName, "Action script")
	width      = flag.Int("width", session.DefaultWidth, "Canvas width")
	height     = flag.Int("height", session.DefaultHeight, "Canvas height")
	tool       = flag.String("tool", session.ToolRadial.String(), "Tool used on press (radial, stamp)")
	radius     = flag.Float64("radius", session.DefaultRadius, "Radial falloff radius")
	blendMode  = flag.String("blend", string(blend.Add), "Radial blend mode (add, lighten, darken, multiply, screen, overlay)")
	brush      = flag.Int("brush", session.DefaultDragBrushSize, "Drag brush size")
	pressBrush = flag.Int("press-brush", session.DefaultPressBrushSize, "Press brush size (stamp tool)")
	brushColor = flag.String("color", "random", "Brush color: random, happy, a preset name or #hex")
	seed       = flag.Int64("seed", 0, "Seed of the random brush colors (0 uses the current time)")
	topRow     = flag.Bool("top-row", false, "Allow the brush to paint the first canvas row")
	filter     = flag.String("filter", string(termview.Nearest), "Resampling filter (nearest, lanczos)")
	live       = flag.Bool("live", false, "Redraw the terminal after every action")
	verbose    = flag.Bool("v", false, "Log every dispatched action")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	src, err := openSource(*source)
	if err != nil {
		log.Fatalf(utils.DecorateText("Failed to open the action script: %v", utils.ErrorMessage), err)
	}
	defer src.Close()

	colors, err := colorSource(*brushColor, *seed)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid brush color: %v", utils.ErrorMessage), err)
	}
	pressTool, err := session.ParseTool(*tool)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid tool: %v", utils.ErrorMessage), err)
	}
	if *filter != string(termview.Nearest) && *filter != string(termview.Lanczos) {
		log.Fatalf(utils.DecorateText("Unsupported filter: %s", utils.ErrorMessage), *filter)
	}

	cols, rows := terminalSize()
	view := &termview.Renderer{
		Out:    os.Stdout,
		Cols:   cols,
		Rows:   rows,
		Filter: termview.Filter(*filter),
		Live:   *live,
	}

	cfg := session.Config{
		Width:          *width,
		Height:         *height,
		Radius:         *radius,
		BlendMode:      blend.Mode(*blendMode),
		PressTool:      pressTool,
		PressBrushSize: *pressBrush,
		DragBrushSize:  *brush,
		PaintTopRow:    *topRow,
		Colors:         colors,
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", 0)
	}

	s, err := newSession(cfg, view, *live)
	if err != nil {
		log.Fatalf(utils.DecorateText("Failed to create the canvas: %v", utils.ErrorMessage), err)
	}

	// Capture CTRL-C and stop the replay.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	if err := replay(ctx, s, src); err != nil {
		fmt.Fprintf(os.Stderr,
			utils.DecorateText("\nError replaying the actions: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		os.Exit(1)
	}

	if !*live {
		if err := draw(view, s.Canvas()); err != nil {
			log.Fatalf(utils.DecorateText("Failed to draw the canvas: %v", utils.ErrorMessage), err)
		}
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// newSession creates the session. In live mode every frame goes to the view,
// otherwise only the final canvas is drawn once the replay is over.
func newSession(cfg session.Config, view session.Renderer, live bool) (*session.Session, error) {
	if live {
		cfg.Renderer = view
	}
	return session.New(cfg)
}

// replay feeds the parsed script into the session until the script ends,
// a quit action is met or the context is cancelled.
func replay(ctx context.Context, s *session.Session, r io.Reader) error {
	done := make(chan struct{})
	actions, errc := readScript(done, r)

	err := s.Run(ctx, actions)
	close(done)

	// The reader reports its error before closing the actions channel, so the
	// error is ready whenever the script was consumed to the end. After a quit
	// or a cancellation the reader may still be blocked reading the source.
	select {
	case serr := <-errc:
		if serr != nil {
			return serr
		}
	default:
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// draw renders the final canvas once.
func draw(view *termview.Renderer, c *pixpaint.Canvas) error {
	img, err := c.Image()
	if err != nil {
		return err
	}
	return view.Render(img)
}

// openSource opens the action script. A pipe name reads from stdin.
func openSource(in string) (io.ReadCloser, error) {
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("unable to open the source file: %w", err)
	}
	return f, nil
}

// colorSource converts the -color flag into a palette source.
func colorSource(name string, seed int64) (palette.Source, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch name {
	case "random":
		return palette.NewUniform(seed), nil
	case "happy":
		return palette.NewHappy(seed), nil
	}
	c, err := palette.Parse(name)
	if err != nil {
		return nil, err
	}
	return palette.Fixed(c), nil
}

// terminalSize returns the usable size of the terminal attached to stdout,
// keeping one row free for the status line.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultCols, defaultRows
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 1 {
		return defaultCols, defaultRows
	}
	return cols, rows - 1
}
