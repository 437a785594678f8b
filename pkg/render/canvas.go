// Package render draws the road, scenery and traffic for one frame onto a
// Canvas.
package render

import (
	"image"
	"image/color"
)

// Canvas receives the draw calls of a frame. Coordinates are in pixels with
// the origin at the top left. Colors carry straight, not premultiplied,
// alpha.
type Canvas interface {
	Size() (width, height int)
	Clear(c color.RGBA)
	// FillRect blends c over the rectangle using c's alpha.
	FillRect(x, y, w, h float64, c color.RGBA)
	// FillQuad fills the convex quadrilateral through the four corners.
	FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, c color.RGBA)
	// DrawImage scales the src part of img into the destination rectangle.
	DrawImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64)
}

// Colors that do not belong to a road band.
var (
	Sky  = color.RGBA{0x72, 0xD7, 0xEE, 0xFF}
	Tree = color.RGBA{0x00, 0x51, 0x08, 0xFF}
	Fog  = color.RGBA{0x00, 0x51, 0x08, 0xFF}
)
