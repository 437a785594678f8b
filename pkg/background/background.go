// Package background paints stand-in artwork for the background and sprite
// sheets, laid out on the same frames as the real sheets so the game runs
// without image files.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/golangdaddy/outrun/pkg/sprite"
)

// Generator paints sheets from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. The same seed paints the same sheets.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// canvas restricts drawing to one frame of a sheet.
type canvas struct {
	img  *image.RGBA
	clip image.Rectangle
}

func (c canvas) set(x, y int, col color.RGBA) {
	if image.Pt(x, y).In(c.clip) {
		c.img.SetRGBA(x, y, col)
	}
}

func (c canvas) rect(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

func (c canvas) ellipse(cx, cy, rx, ry int, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if float64(dx*dx)/float64(rx*rx)+float64(dy*dy)/float64(ry*ry) <= 1 {
				c.set(cx+dx, cy+dy, col)
			}
		}
	}
}

// Background paints the sky, hills and trees strips. Each strip tiles
// horizontally across its width.
func (g *Generator) Background() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: sprite.BackgroundSize})
	g.sky(canvas{img, sprite.Sky.Frame().Rect()})
	g.hills(canvas{img, sprite.Hills.Frame().Rect()})
	g.treeLine(canvas{img, sprite.Trees.Frame().Rect()})
	return img
}

func (g *Generator) sky(c canvas) {
	r := c.clip
	top := color.RGBA{0x3A, 0x8F, 0xD8, 0xFF}
	bottom := color.RGBA{0x72, 0xD7, 0xEE, 0xFF}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := float64(y-r.Min.Y) / float64(r.Dy())
		c.rect(image.Rect(r.Min.X, y, r.Max.X, y+1), lerp(top, bottom, t))
	}
	cloud := color.RGBA{0xF4, 0xF8, 0xFF, 0xFF}
	for i := 0; i < 24; i++ {
		x := r.Min.X + g.rng.Intn(r.Dx())
		y := r.Min.Y + 40 + g.rng.Intn(r.Dy()/2)
		for puff := 0; puff < 4; puff++ {
			rx := 18 + g.rng.Intn(30)
			ry := 8 + g.rng.Intn(10)
			px := x + puff*rx/2
			c.ellipse(r.Min.X+wrap(px-r.Min.X, r.Dx()), y, rx, ry, cloud)
		}
	}
}

func (g *Generator) hills(c canvas) {
	r := c.clip
	w := float64(r.Dx())
	far := color.RGBA{0x4C, 0x8C, 0x3C, 0xFF}
	near := color.RGBA{0x2E, 0x6E, 0x2A, 0xFF}
	phase := g.rng.Float64() * 2 * math.Pi
	for x := r.Min.X; x < r.Max.X; x++ {
		t := float64(x-r.Min.X) / w * 2 * math.Pi
		h1 := 140 + 60*math.Sin(2*t+phase) + 30*math.Sin(5*t)
		h2 := 90 + 40*math.Sin(3*t+phase/2) + 15*math.Sin(7*t+1)
		c.rect(image.Rect(x, r.Max.Y-int(h1), x+1, r.Max.Y), far)
		c.rect(image.Rect(x, r.Max.Y-int(h2), x+1, r.Max.Y), near)
	}
}

// treeLine draws a band of trees and bushes along the bottom of the strip.
func (g *Generator) treeLine(c canvas) {
	r := c.clip
	for x := 0; x < r.Dx(); x += 6 + g.rng.Intn(14) {
		base := r.Max.Y - 4 - g.rng.Intn(40)
		// draw near the seam twice so the strip tiles
		for _, dx := range []int{0, r.Dx()} {
			px := r.Min.X + x - dx
			if g.rng.Float64() < 0.4 {
				g.drawTree(c, px, base, 40+g.rng.Intn(50), 20+g.rng.Intn(15))
			} else {
				g.drawBush(c, px, base, 8+g.rng.Intn(12))
			}
		}
	}
}

// drawTree draws a layered pine with its trunk base at (x, y).
func (g *Generator) drawTree(c canvas, x, y, height, width int) {
	trunk := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + width/6
	c.rect(image.Rect(x-trunkW/2, y-height/3, x+trunkW/2, y), trunk)

	leaves := color.RGBA{
		uint8(20 + g.rng.Intn(30)),
		uint8(80 + g.rng.Intn(60)),
		uint8(20 + g.rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := width - l*5
		if layerW < 5 {
			layerW = 5
		}
		rows := height / 3
		for ly := 0; ly < rows; ly++ {
			rowW := layerW * (rows - ly) / rows
			c.rect(image.Rect(x-rowW/2, layerY-ly, x+rowW/2, layerY-ly+1), leaves)
		}
	}
}

// drawBush draws a round bush sitting on (x, y).
func (g *Generator) drawBush(c canvas, x, y, radius int) {
	col := color.RGBA{
		uint8(40 + g.rng.Intn(40)),
		uint8(100 + g.rng.Intn(50)),
		uint8(40 + g.rng.Intn(40)),
		255,
	}
	c.ellipse(x, y-radius, radius, radius, col)
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
