package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/outrun/pkg/config"
)

// setupItem is one row of the setup menu. Rows with an option name adjust
// that option with left/right.
type setupItem struct {
	label  string
	option string
	step   int
}

var setupItems = []setupItem{
	{label: "Start Race"},
	{label: "Lanes", option: "lanes", step: 1},
	{label: "Road Width", option: "roadWidth", step: 250},
	{label: "Traffic", option: "totalCars", step: 25},
	{label: "Draw Distance", option: "drawDistance", step: 50},
	{label: "Fog Density", option: "fogDensity", step: 1},
	{label: "Field of View", option: "fieldOfView", step: 5},
	{label: "Camera Height", option: "cameraHeight", step: 250},
	{label: "Reset to Defaults"},
}

// SetupScreen lets the player adjust the race options before starting.
type SetupScreen struct {
	selectedOption int
	config         config.Config
	face           *text.GoXFace
	fill           *ebiten.Image
	onStart        func(config.Config) // Callback when the race starts
}

// NewSetupScreen creates a setup screen starting from cfg.
func NewSetupScreen(cfg config.Config, onStart func(config.Config)) *SetupScreen {
	fill := ebiten.NewImage(1, 1)
	fill.Fill(color.White)
	return &SetupScreen{
		config:  cfg.Clamp(),
		face:    text.NewGoXFace(bitmapfont.Face),
		fill:    fill,
		onStart: onStart,
	}
}

// Config is the configuration as currently adjusted.
func (ss *SetupScreen) Config() config.Config {
	return ss.config
}

// Update handles input for the setup screen
func (ss *SetupScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		ss.selectedOption = (ss.selectedOption + len(setupItems) - 1) % len(setupItems)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		ss.selectedOption = (ss.selectedOption + 1) % len(setupItems)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		ss.adjust(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		ss.adjust(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ss.choose()
	}
	return nil
}

func (ss *SetupScreen) adjust(dir int) {
	item := setupItems[ss.selectedOption]
	if item.option == "" {
		return
	}
	ss.config, _ = ss.config.Nudge(item.option, dir*item.step)
}

func (ss *SetupScreen) choose() {
	switch setupItems[ss.selectedOption].label {
	case "Start Race":
		if ss.onStart != nil {
			ss.onStart(ss.config)
		}
	case "Reset to Defaults":
		seed := ss.config.Seed
		ss.config = config.Default()
		ss.config.Seed = seed
	}
}

// Draw renders the setup screen
func (ss *SetupScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	centerX := float64(width) / 2
	ss.drawText(screen, "RACE SETUP", centerX, float64(height)/8, 4, color.RGBA{255, 200, 50, 255})

	buttonWidth := 420.0
	buttonHeight := 36.0
	spacing := 44.0
	top := float64(height)/4 + 10
	buttonX := centerX - buttonWidth/2

	for i, item := range setupItems {
		label := item.label
		if item.option != "" {
			o, _ := config.Lookup(item.option)
			label = fmt.Sprintf("%s  < %d >", item.label, o.Get(ss.config))
		}
		bg := color.RGBA{40, 40, 60, 255}
		fg := color.RGBA{255, 255, 255, 255}
		if i == ss.selectedOption {
			bg = color.RGBA{60, 100, 140, 255}
			fg = color.RGBA{200, 240, 255, 255}
		}
		ss.drawButton(screen, label, buttonX, top+float64(i)*spacing, buttonWidth, buttonHeight, bg, fg)
	}

	ss.drawText(screen, "Up/Down: Navigate | Left/Right: Adjust | Enter: Select", centerX, float64(height)-40, 1.25, color.RGBA{150, 150, 150, 255})
}

// drawButton draws a button with a border, background and centered label
func (ss *SetupScreen) drawButton(screen *ebiten.Image, label string, x, y, width, height float64, bgColor, textColor color.Color) {
	const border = 2.0
	ss.rect(screen, x, y, width, height, color.RGBA{80, 80, 100, 255})
	ss.rect(screen, x+border, y+border, width-2*border, height-2*border, bgColor)
	ss.drawText(screen, label, x+width/2, y+height/2-8, 1, textColor)
}

func (ss *SetupScreen) rect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(ss.fill, op)
}

// drawText draws str horizontally centered on centerX with its top at y
func (ss *SetupScreen) drawText(screen *ebiten.Image, str string, centerX, y, scale float64, clr color.Color) {
	w := text.Advance(str, ss.face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, ss.face, op)
}
