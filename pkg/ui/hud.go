package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/outrun/pkg/hud"
)

// flashTime is how long a field stays highlighted after it changes.
const flashTime = 600 * time.Millisecond

var hudLabels = map[hud.Field]string{
	hud.Speed:      "SPEED",
	hud.CurrentLap: "TIME",
	hud.LastLap:    "LAST",
	hud.BestLap:    "BEST",
	hud.Rank:       "",
}

var hudOrder = []hud.Field{hud.Speed, hud.CurrentLap, hud.LastLap, hud.BestLap, hud.Rank}

// HUDPanel draws the HUD strip along the top of the race view. It is the
// hud.Sink of the race screen.
type HUDPanel struct {
	face    *text.GoXFace
	values  map[hud.Field]string
	changed map[hud.Field]time.Time
	strip   *ebiten.Image

	NewBest bool
	Muted   bool
}

// NewHUDPanel creates an empty panel.
func NewHUDPanel() *HUDPanel {
	strip := ebiten.NewImage(1, 1)
	strip.Fill(color.RGBA{0, 0, 0, 160})
	return &HUDPanel{
		face:    text.NewGoXFace(bitmapfont.Face),
		values:  make(map[hud.Field]string),
		changed: make(map[hud.Field]time.Time),
		strip:   strip,
	}
}

// SetText records a new value for f.
func (p *HUDPanel) SetText(f hud.Field, value string) {
	p.values[f] = value
	// the clock runs every step, flashing it would never stop
	if f != hud.CurrentLap && f != hud.Speed {
		p.changed[f] = time.Now()
	}
}

// Draw renders the strip onto screen.
func (p *HUDPanel) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	const scale = 2.0
	stripHeight := 16 * scale

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, stripHeight)
	screen.DrawImage(p.strip, op)

	cellWidth := width / float64(len(hudOrder))
	for i, f := range hudOrder {
		label := hudLabels[f]
		value, ok := p.values[f]
		if !ok {
			value = "-"
		}
		line := value
		if label != "" {
			line = label + " " + value
		}

		col := color.RGBA{220, 220, 230, 255}
		switch {
		case f == hud.BestLap && p.NewBest:
			col = color.RGBA{255, 200, 50, 255}
		case time.Since(p.changed[f]) < flashTime:
			col = color.RGBA{150, 200, 255, 255}
		}

		textOp := &text.DrawOptions{}
		textOp.GeoM.Scale(scale, scale)
		textOp.GeoM.Translate(float64(i)*cellWidth+8, 2)
		textOp.ColorScale.ScaleWithColor(col)
		text.Draw(screen, line, p.face, textOp)
	}

	if p.Muted {
		mutedText := "MUTED"
		w := text.Advance(mutedText, p.face) * scale
		textOp := &text.DrawOptions{}
		textOp.GeoM.Scale(scale, scale)
		textOp.GeoM.Translate(width-w-8, stripHeight+4)
		textOp.ColorScale.ScaleWithColor(color.RGBA{255, 120, 120, 255})
		text.Draw(screen, mutedText, p.face, textOp)
	}
}
