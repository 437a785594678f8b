package background

import (
	"image"
	"image/color"

	"github.com/golangdaddy/outrun/pkg/sprite"
)

var carColors = map[sprite.ID]color.RGBA{
	sprite.Car01: {0x2B, 0x5C, 0xD6, 0xFF},
	sprite.Car02: {0xE8, 0xC5, 0x1C, 0xFF},
	sprite.Car03: {0xF0, 0xF0, 0xF0, 0xFF},
	sprite.Car04: {0x2F, 0x9E, 0x44, 0xFF},
	sprite.Semi:  {0x9A, 0x9A, 0xA8, 0xFF},
	sprite.Truck: {0x8A, 0x4B, 0x2B, 0xFF},
}

var playerRed = color.RGBA{0xD0, 0x1C, 0x1C, 0xFF}

// Sprites paints a placeholder for every sprite inside its frame on a sheet
// the size of the real one. Everything outside the frames is transparent.
func (g *Generator) Sprites() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: sprite.SheetSize})
	for _, id := range sprite.All() {
		g.paint(canvas{img, id.Frame().Rect()}, id)
	}
	return img
}

func (g *Generator) paint(c canvas, id sprite.ID) {
	r := c.clip
	cx := (r.Min.X + r.Max.X) / 2
	switch id {
	case sprite.Tree1, sprite.Tree2, sprite.PalmTree, sprite.DeadTree1, sprite.DeadTree2:
		g.drawTree(c, cx, r.Max.Y, r.Dy(), r.Dx())
	case sprite.Bush1, sprite.Bush2, sprite.Cactus:
		c.ellipse(cx, r.Max.Y-r.Dy()/2, r.Dx()/2, r.Dy()/2, color.RGBA{0x3C, 0x8C, 0x3C, 0xFF})
	case sprite.Boulder1, sprite.Boulder2, sprite.Boulder3:
		c.ellipse(cx, r.Max.Y-r.Dy()/2, r.Dx()/2, r.Dy()/2, color.RGBA{0x80, 0x78, 0x70, 0xFF})
	case sprite.Stump:
		c.rect(image.Rect(r.Min.X+r.Dx()/4, r.Min.Y+r.Dy()/3, r.Max.X-r.Dx()/4, r.Max.Y), color.RGBA{0x6B, 0x4A, 0x2A, 0xFF})
	case sprite.Column:
		c.rect(image.Rect(r.Min.X+r.Dx()/4, r.Min.Y, r.Max.X-r.Dx()/4, r.Max.Y), color.RGBA{0xD8, 0xD0, 0xC0, 0xFF})
	case sprite.Car01, sprite.Car02, sprite.Car03, sprite.Car04, sprite.Semi, sprite.Truck:
		drawCar(c, carColors[id])
	case sprite.PlayerLeft, sprite.PlayerStraight, sprite.PlayerRight,
		sprite.PlayerUphillLeft, sprite.PlayerUphillStraight, sprite.PlayerUphillRight:
		drawCar(c, playerRed)
	default:
		drawBillboard(c)
	}
}

// drawCar draws a rear view: body, window, lights and wheels.
func drawCar(c canvas, body color.RGBA) {
	r := c.clip
	w, h := r.Dx(), r.Dy()
	tyre := color.RGBA{0x1A, 0x1A, 0x1A, 0xFF}
	c.rect(image.Rect(r.Min.X+w/10, r.Max.Y-h/4, r.Min.X+w*3/10, r.Max.Y), tyre)
	c.rect(image.Rect(r.Max.X-w*3/10, r.Max.Y-h/4, r.Max.X-w/10, r.Max.Y), tyre)
	c.rect(image.Rect(r.Min.X, r.Min.Y+h/3, r.Max.X, r.Max.Y-h/6), body)
	c.rect(image.Rect(r.Min.X+w/6, r.Min.Y+h/8, r.Max.X-w/6, r.Min.Y+h/3), body)
	c.rect(image.Rect(r.Min.X+w/4, r.Min.Y+h/6, r.Max.X-w/4, r.Min.Y+h/3), color.RGBA{0x30, 0x40, 0x50, 0xFF})
	light := color.RGBA{0xFF, 0x40, 0x30, 0xFF}
	c.rect(image.Rect(r.Min.X+2, r.Min.Y+h/2, r.Min.X+w/6, r.Min.Y+h*5/8), light)
	c.rect(image.Rect(r.Max.X-w/6, r.Min.Y+h/2, r.Max.X-2, r.Min.Y+h*5/8), light)
}

// drawBillboard draws a framed panel on two posts.
func drawBillboard(c canvas) {
	r := c.clip
	w, h := r.Dx(), r.Dy()
	post := color.RGBA{0x50, 0x50, 0x50, 0xFF}
	c.rect(image.Rect(r.Min.X+w/5, r.Min.Y+h/2, r.Min.X+w/5+6, r.Max.Y), post)
	c.rect(image.Rect(r.Max.X-w/5-6, r.Min.Y+h/2, r.Max.X-w/5, r.Max.Y), post)
	c.rect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+h*2/3), color.RGBA{0xF2, 0xF2, 0xE8, 0xFF})
	c.rect(image.Rect(r.Min.X+8, r.Min.Y+8, r.Max.X-8, r.Min.Y+h*2/3-8), color.RGBA{0xE0, 0x4A, 0x2A, 0xFF})
}
