package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/hud"
	"github.com/golangdaddy/outrun/pkg/laps"
	"github.com/golangdaddy/outrun/pkg/models"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sound"
	"github.com/golangdaddy/outrun/pkg/ui"
)

// Env holds what outlives a single race.
type Env struct {
	Config    config.Config
	AssetsDir string
	Profile   *models.Store
	Laps      *laps.Store   // nil disables lap history
	Sound     *sound.System // nil is silent
}

// RecordLap stores a completed lap in the history and the profile.
func (e *Env) RecordLap(st *sim.State, lap *sim.LapRecord) {
	if e.Laps != nil {
		if err := e.Laps.Record(lap.Number, lap.Time, lap.MaxSpeed, lap.Collisions); err != nil {
			monitoring.Logf("could not record lap %d: %v", lap.Number, err)
		}
	}
	e.Profile.RecordLap(st.Road.Length())
	if lap.NewBest {
		e.Profile.SetBestLap(lap.Time)
		monitoring.Logf("new best lap %s", hud.FormatTime(lap.Time))
	}
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	env           *Env
	currentScreen Screen
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance
func NewGame(env *Env) *Game {
	g := &Game{env: env}
	g.showTitle()
	return g
}

// showTitle moves to the title screen, which leads to the setup screen and
// from there into a race.
func (g *Game) showTitle() {
	best := ""
	if seconds, ok := g.env.Profile.BestLap(); ok {
		best = hud.FormatTime(seconds)
	}
	g.currentScreen = ui.NewTitleScreen(best, func() {
		g.currentScreen = ui.NewSetupScreen(g.env.Config, func(cfg config.Config) {
			g.env.Config = cfg
			g.env.Profile.SetOptions(cfg)
			g.currentScreen = NewRaceScreen(g.env, g.showTitle)
		})
	})
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the configured view size
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.env.Config.Width, g.env.Config.Height
}
