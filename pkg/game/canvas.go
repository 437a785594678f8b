package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas draws renderer output onto an ebiten image. Polygons are
// triangles over a white texel tinted with the vertex color.
type Canvas struct {
	target   *ebiten.Image
	textures map[image.Image]*ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates a canvas with no target.
func NewCanvas() *Canvas {
	return &Canvas{
		textures: make(map[image.Image]*ebiten.Image),
		vertices: make([]ebiten.Vertex, 4),
		indices:  []uint16{0, 1, 2, 2, 3, 0},
	}
}

// SetTarget points the canvas at the image of the current frame.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

func (c *Canvas) Size() (int, int) {
	b := c.target.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Clear(col color.RGBA) {
	c.target.Fill(col)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.FillQuad(x, y, x+w, y, x+w, y+h, x, y+h, col)
}

func (c *Canvas) FillQuad(x1, y1, x2, y2, x3, y3, x4, y4 float64, col color.RGBA) {
	if col.A == 0 {
		return
	}
	r := float32(col.R) / 0xff
	g := float32(col.G) / 0xff
	b := float32(col.B) / 0xff
	a := float32(col.A) / 0xff
	corners := [4][2]float64{{x1, y1}, {x2, y2}, {x3, y3}, {x4, y4}}
	for i, p := range corners {
		c.vertices[i] = ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	c.target.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

func (c *Canvas) DrawImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64) {
	if src.Empty() || dw <= 0 || dh <= 0 {
		return
	}
	tex := c.texture(img)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(src.Dx()), dh/float64(src.Dy()))
	op.GeoM.Translate(dx, dy)
	c.target.DrawImage(tex.SubImage(src).(*ebiten.Image), op)
}

// texture uploads img once and reuses it on later frames.
func (c *Canvas) texture(img image.Image) *ebiten.Image {
	if tex, ok := img.(*ebiten.Image); ok {
		return tex
	}
	tex, ok := c.textures[img]
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.textures[img] = tex
	}
	return tex
}
