package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/esimov/pixpaint"
	"github.com/esimov/pixpaint/blend"
	"github.com/esimov/pixpaint/palette"
	"github.com/esimov/pixpaint/session"
	"github.com/esimov/pixpaint/termview"
	"github.com/stretchr/testify/assert"
)

func TestMain_ColorSource(t *testing.T) {
	src, err := colorSource("#00ff00", 1)
	assert.NoError(t, err)
	assert.Equal(t, pixpaint.Color{G: 255}, src.Next())

	src, err = colorSource("random", 3)
	assert.NoError(t, err)
	assert.IsType(t, &palette.Uniform{}, src)

	src, err = colorSource("happy", 3)
	assert.NoError(t, err)
	assert.IsType(t, &palette.Happy{}, src)

	_, err = colorSource("not-a-color", 1)
	assert.Error(t, err)
}

func TestMain_Replay(t *testing.T) {
	s, err := session.New(session.Config{
		Width:     8,
		Height:    8,
		PressTool: session.ToolStamp,
		Colors:    palette.Fixed(pixpaint.Color{B: 255}),
	})
	assert.NoError(t, err)

	script := "bg white\ndown 4 4\nquit\nbg black\n"
	assert.NoError(t, replay(context.Background(), s, strings.NewReader(script)))
	assert.Equal(t, pixpaint.White, s.Canvas().At(0, 0))
	assert.Equal(t, pixpaint.Color{B: 255}, s.Canvas().At(4, 4))
}

func TestMain_ReplayScriptError(t *testing.T) {
	s, _ := session.New(session.Config{Width: 4, Height: 4})
	err := replay(context.Background(), s, strings.NewReader("down 1 1\nwhat\n"))
	assert.Error(t, err)
}

// replayAsync runs replay in a goroutine and returns its result channel.
func replayAsync(ctx context.Context, s *session.Session, r io.Reader) <-chan error {
	res := make(chan error, 1)
	go func() {
		res <- replay(ctx, s, r)
	}()
	return res
}

func TestMain_ReplayCancelledWhileReading(t *testing.T) {
	s, _ := session.New(session.Config{Width: 4, Height: 4})
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	res := replayAsync(ctx, s, pr)

	_, err := pw.Write([]byte("bg white\n"))
	assert.NoError(t, err)
	cancel()

	select {
	case err := <-res:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("replay did not return after the context was cancelled")
	}
}

func TestMain_ReplayQuitWhileSourceOpen(t *testing.T) {
	s, _ := session.New(session.Config{Width: 4, Height: 4})
	pr, pw := io.Pipe()
	defer pw.Close()

	res := replayAsync(context.Background(), s, pr)
	_, err := pw.Write([]byte("bg black\nquit\n"))
	assert.NoError(t, err)

	select {
	case err := <-res:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("replay did not return after a quit action")
	}
	assert.Equal(t, pixpaint.Black, s.Canvas().At(0, 0))
}

func TestMain_LiveReplay(t *testing.T) {
	var out bytes.Buffer
	view := &termview.Renderer{Out: &out, Cols: 20, Rows: 10, Live: true}

	s, err := newSession(session.Config{
		Width:     8,
		Height:    8,
		BlendMode: blend.Lighten,
		Colors:    palette.Fixed(pixpaint.White),
	}, view, true)
	assert.NoError(t, err)

	script := "bg black\ndown 4 4\nmove 1 1\ndrag 2 2\n"
	assert.NoError(t, replay(context.Background(), s, strings.NewReader(script)))

	// initial frame, background, press and drag; the move does not redraw
	assert.Equal(t, 4, s.Frames())
	assert.Equal(t, 4, strings.Count(out.String(), "\x1b[H"))
	assert.Equal(t, pixpaint.White, s.Canvas().At(4, 4))
}

func TestMain_NonLiveSessionDoesNotRender(t *testing.T) {
	var out bytes.Buffer
	view := &termview.Renderer{Out: &out, Cols: 20, Rows: 10}

	s, err := newSession(session.Config{Width: 8, Height: 8}, view, false)
	assert.NoError(t, err)
	assert.NoError(t, replay(context.Background(), s, strings.NewReader("bg white\n")))
	assert.Zero(t, out.Len())

	assert.NoError(t, draw(view, s.Canvas()))
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
}

func TestMain_OpenSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strokes.txt")
	assert.NoError(t, os.WriteFile(path, []byte("bg grey\n"), 0644))

	src, err := openSource(path)
	assert.NoError(t, err)
	defer src.Close()

	data, err := io.ReadAll(src)
	assert.NoError(t, err)
	assert.Equal(t, "bg grey\n", string(data))

	_, err = openSource(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
