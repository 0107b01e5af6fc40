/*
Package pixpaint is a small raster painting library operating on an in-memory RGB pixel buffer.

The canvas is a flat, row-major buffer with three bytes (R, G, B) per pixel and the origin
in the top-left corner. It supports three operations: a solid background fill, a square
brush stamp and an additive radial wash with inverse-square falloff. All of them are
synchronous and bounded, and none of them allocates once the canvas exists, so they can be
called on every pointer event of an interactive application.

The package does not know about windows or input devices. A host application translates
its events into canvas calls (see the session package) and wraps the buffer into a
displayable image with NewImage, which checks the buffer length instead of trusting it.

	package main

	import (
		"fmt"
		"image"

		"github.com/esimov/pixpaint"
	)

	func main() {
		c, err := pixpaint.Fill(512, 512, pixpaint.LightGrey)
		if err != nil {
			fmt.Printf("Error creating the canvas: %s", err.Error())
			return
		}
		c.Stamp(image.Pt(40, 40), pixpaint.Brush{Size: 9, Color: pixpaint.Black})
		if err := c.RadialBlend(image.Pt(256, 256), 16, pixpaint.Color{R: 255}); err != nil {
			fmt.Printf("Error painting: %s", err.Error())
		}
	}
*/
package pixpaint
