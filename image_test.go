package pixpaint

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_NewImageLengthCheck(t *testing.T) {
	testCases := []struct {
		name          string
		pix           []uint8
		width, height int
		wantErr       error
	}{
		{"exact", make([]uint8, 4*3*3), 4, 3, nil},
		{"short", make([]uint8, 4*3*3-1), 4, 3, ErrBufferSize},
		{"long", make([]uint8, 4*3*4), 4, 3, ErrBufferSize},
		{"rgba sized", make([]uint8, 4*3*4), 3, 4, ErrBufferSize},
		{"empty", nil, 1, 1, ErrBufferSize},
		{"zero width", nil, 0, 3, ErrInvalidDimensions},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := NewImage(tc.pix, tc.width, tc.height)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				assert.Equal(t, image.Rect(0, 0, tc.width, tc.height), img.Bounds())
				return
			}
			assert.Nil(t, img)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestImage_SizeErrorDetails(t *testing.T) {
	_, err := NewImage(make([]uint8, 10), 2, 2)

	var sizeErr *ImageSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected an *ImageSizeError, got %T", err)
	}
	assert.Equal(t, 10, sizeErr.Len)
	assert.Contains(t, err.Error(), "expected 12")
}

func TestImage_SharesCanvasMemory(t *testing.T) {
	assert := assert.New(t)

	c, _ := Fill(5, 4, LightGrey)
	img, err := c.Image()
	assert.NoError(err)

	c.Set(3, 2, Color{R: 1, G: 2, B: 3})
	assert.Equal(Color{R: 1, G: 2, B: 3}, img.RGBAt(3, 2))

	img.Set(0, 1, color.NRGBA{R: 255, G: 128, A: 255})
	assert.Equal(Color{R: 255, G: 128}, c.At(0, 1))
	assert.True(img.Opaque())
	assert.Equal(Color{}, img.RGBAt(-1, 0))
}

func TestImage_DrawInterop(t *testing.T) {
	c, _ := Fill(6, 6, Black)
	img, _ := c.Image()

	draw.Draw(img, image.Rect(2, 2, 4, 4), &image.Uniform{C: color.RGBA{R: 10, G: 20, B: 30, A: 255}}, image.Point{}, draw.Src)

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := Black
			if x >= 2 && x < 4 && y >= 2 && y < 4 {
				want = Color{R: 10, G: 20, B: 30}
			}
			if got := c.At(x, y); got != want {
				t.Errorf("pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestImage_NRGBA(t *testing.T) {
	c, _ := Fill(3, 2, Grey)
	c.Set(2, 1, Color{R: 9, G: 8, B: 7})
	img, _ := c.Image()

	dst := img.NRGBA()
	assert.Equal(t, image.Rect(0, 0, 3, 2), dst.Bounds())
	assert.Equal(t, color.NRGBA{R: 127, G: 127, B: 127, A: 255}, dst.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 9, G: 8, B: 7, A: 255}, dst.NRGBAAt(2, 1))
}

func TestImage_ColorModel(t *testing.T) {
	got := RGBModel.Convert(color.Gray{Y: 200})
	assert.Equal(t, Color{R: 200, G: 200, B: 200}, got)

	r, g, b, a := White.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}
