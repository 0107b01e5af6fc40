package pixpaint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a canvas or image is requested
	// with a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid canvas dimensions")

	// ErrInvalidRadius is returned by the radial operations when the falloff
	// radius is not a positive number.
	ErrInvalidRadius = errors.New("invalid falloff radius")

	// ErrInvalidBlendMode is returned when a radial wash is requested with an
	// unknown blend mode.
	ErrInvalidBlendMode = errors.New("invalid blend mode")

	// ErrBufferSize is returned when a pixel buffer does not match the
	// dimensions it is supposed to describe.
	ErrBufferSize = errors.New("pixel buffer size mismatch")
)

// ImageSizeError reports a pixel buffer whose length differs from width*height*3.
type ImageSizeError struct {
	Width, Height int
	Len           int
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("%v: got %d bytes for a %dx%d RGB image, expected %d",
		ErrBufferSize, e.Len, e.Width, e.Height, e.Width*e.Height*bytesPerPixel)
}

// Unwrap makes ImageSizeError match ErrBufferSize with errors.Is.
func (e *ImageSizeError) Unwrap() error {
	return ErrBufferSize
}
