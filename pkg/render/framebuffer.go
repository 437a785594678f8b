package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Framebuffer is a software Canvas backed by an RGBA image. Headless
// frontends and tests draw into it.
type Framebuffer struct {
	Width  int
	Height int
	img    *image.RGBA
}

// NewFramebuffer creates a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Size implements Canvas.
func (fb *Framebuffer) Size() (int, int) {
	return fb.Width, fb.Height
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	xdraw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

// GetPixel returns the color at (x, y), or transparent black when out of
// bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// blend draws c over the pixel at (x, y).
func (fb *Framebuffer) blend(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height || c.A == 0 {
		return
	}
	if c.A == 0xFF {
		fb.img.SetRGBA(x, y, c)
		return
	}
	dst := fb.img.RGBAAt(x, y)
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	fb.img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(a + uint32(dst.A)*(255-a)/255),
	})
}

// span fills pixels whose centers lie in [x0, x1) on row y.
func (fb *Framebuffer) span(y int, x0, x1 float64, c color.RGBA) {
	start := int(math.Ceil(x0 - 0.5))
	end := int(math.Ceil(x1 - 0.5))
	if start < 0 {
		start = 0
	}
	if end > fb.Width {
		end = fb.Width
	}
	for x := start; x < end; x++ {
		fb.blend(x, y, c)
	}
}

// FillRect implements Canvas. Negative sizes extend left or up.
func (fb *Framebuffer) FillRect(x, y, w, h float64, c color.RGBA) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	top := int(math.Max(0, math.Ceil(y-0.5)))
	bottom := int(math.Min(float64(fb.Height), math.Ceil(y+h-0.5)))
	for row := top; row < bottom; row++ {
		fb.span(row, x, x+w, c)
	}
}

// FillQuad implements Canvas with a scanline fill sampling pixel centers.
func (fb *Framebuffer) FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, c color.RGBA) {
	xs := [4]float64{x1, x2, x3, x4}
	ys := [4]float64{y1, y2, y3, y4}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	top := int(math.Max(0, math.Ceil(minY-0.5)))
	bottom := int(math.Min(float64(fb.Height), math.Ceil(maxY-0.5)))

	for row := top; row < bottom; row++ {
		yc := float64(row) + 0.5
		lo, hi := math.Inf(1), math.Inf(-1)
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			ya, yb := ys[i], ys[j]
			if ya == yb || yc < math.Min(ya, yb) || yc >= math.Max(ya, yb) {
				continue
			}
			x := xs[i] + (yc-ya)*(xs[j]-xs[i])/(yb-ya)
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		if lo < hi {
			fb.span(row, lo, hi, c)
		}
	}
}

// DrawImage implements Canvas with nearest-neighbour scaling, compositing
// the source over the frame.
func (fb *Framebuffer) DrawImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64) {
	src = src.Intersect(img.Bounds())
	if src.Empty() || dw <= 0 || dh <= 0 {
		return
	}
	dst := image.Rect(
		int(math.Round(dx)), int(math.Round(dy)),
		int(math.Round(dx+dw)), int(math.Round(dy+dh)),
	)
	if dst.Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(fb.img, dst, img, src, xdraw.Over, nil)
}

// Image returns the backing image.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.img); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}
