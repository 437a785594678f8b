package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw copies the framebuffer onto a terminal screen. Each cell shows two
// framebuffer rows as an upper half block, so the framebuffer should be
// twice as tall as area.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		top := (row - area.Min.Y) * 2
		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(x, top)),
					Bg: cellColor(fb.GetPixel(x, top+1)),
				},
			})
		}
	}
}

// DrawText writes s on one row of the screen starting at (x, y), clipped to
// the screen width.
func DrawText(scr uv.Screen, x, y int, s string, fg, bg color.Color) {
	width := scr.Bounds().Max.X
	for _, r := range s {
		if x >= width {
			return
		}
		scr.SetCell(x, y, &uv.Cell{
			Content: string(r),
			Width:   1,
			Style:   uv.Style{Fg: fg, Bg: bg},
		})
		x++
	}
}

func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}
