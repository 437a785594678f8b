package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var controlsHelp = []string{
	"ARROWS / WASD  drive",
	"[ ]  lanes    - =  draw distance    , .  field of view",
	"M  sound    ESC  back to title",
}

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	bestLap        string
	face           *text.GoXFace
	line           *ebiten.Image
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. bestLap is the formatted
// record, empty when there is none.
func NewTitleScreen(bestLap string, onStartPressed func()) *TitleScreen {
	line := ebiten.NewImage(1, 1)
	line.Fill(color.RGBA{50, 60, 80, 100})
	return &TitleScreen{
		startTime:      time.Now(),
		bestLap:        bestLap,
		face:           text.NewGoXFace(bitmapfont.Face),
		line:           line,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing scale effect (1.0 to 1.1)
	pulseScale := 1.0 + 0.1*sinWave(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*sinWave(elapsed*1.5))
	ts.drawCentered(screen, "OUTRUN", centerX, centerY-8, 8.0*pulseScale, color.RGBA{
		uint8(255 * brightness),
		uint8(90 * brightness),
		uint8(140 * brightness),
		255,
	})

	ts.drawCentered(screen, "Pseudo-3D Pursuit Racing", centerX, centerY+80, 2.0, color.RGBA{180, 180, 200, 255})

	if ts.bestLap != "" {
		ts.drawCentered(screen, "BEST LAP "+ts.bestLap, centerX, centerY+120, 2.0, color.RGBA{255, 200, 50, 255})
	}

	for i, help := range controlsHelp {
		ts.drawCentered(screen, help, centerX, float64(height)*2/3+float64(i)*22, 1.5, color.RGBA{120, 130, 150, 255})
	}

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		ts.drawCentered(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-60, 1.5, color.RGBA{150, 200, 255, 255})
	}

	ts.drawRule(screen, width, float64(height)/6)
	ts.drawRule(screen, width, float64(height)*5/6-40)
}

func (ts *TitleScreen) drawCentered(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	w := text.Advance(s, ts.face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, ts.face, op)
}

func (ts *TitleScreen) drawRule(screen *ebiten.Image, width int, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), 2)
	op.GeoM.Translate(0, y)
	screen.DrawImage(ts.line, op)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}
