package game

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/outrun/pkg/assets"
	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/hud"
	"github.com/golangdaddy/outrun/pkg/loop"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/render"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/ui"
)

// RaceScreen runs a race: it steps the simulation at the fixed rate and
// draws it through the renderer.
type RaceScreen struct {
	env      *Env
	sim      *sim.Simulation
	stepper  *loop.Stepper
	renderer *render.Renderer
	canvas   *Canvas
	hud      *hud.HUD
	panel    *ui.HUDPanel
	stats    render.Stats
	cancel   context.CancelFunc
	onExit   func() // Callback when the player leaves the race
	// loading holds the race until the sheets have arrived.
	loading bool
}

// NewRaceScreen builds the track for the env's configuration and starts
// loading the sprite sheets in the background. The race neither steps nor
// renders until both sheets are in.
func NewRaceScreen(env *Env, onExit func()) *RaceScreen {
	best, _ := env.Profile.BestLap()
	s := sim.New(env.Config, road.DefaultLayout(), best)

	ctx, cancel := context.WithCancel(context.Background())
	assets.Prefetch(ctx, env.AssetsDir, s.Inbox)

	panel := ui.NewHUDPanel()
	panel.Muted = env.Sound.Muted()
	st := s.State()
	return &RaceScreen{
		env:      env,
		sim:      s,
		stepper:  loop.NewStepper(st.Derived.Step, loop.SystemClock{}),
		renderer: render.NewRenderer(s.Seed()),
		canvas:   NewCanvas(),
		hud:      hud.New(st.Config.FPS, panel),
		panel:    panel,
		cancel:   cancel,
		onExit:   onExit,
		loading:  true,
	}
}

// Update handles input and advances the simulation by the elapsed time.
func (rs *RaceScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		rs.cancel()
		if rs.onExit != nil {
			rs.onExit()
		}
		return nil
	}
	if rs.loading {
		rs.sim.Sync()
		if !rs.sim.State().Ready() {
			return nil
		}
		rs.loading = false
		rs.stepper.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		rs.env.Sound.SetMuted(!rs.env.Sound.Muted())
		rs.panel.Muted = rs.env.Sound.Muted()
	}
	for _, t := range tweaks {
		if inpututil.IsKeyJustPressed(t.key) {
			rs.apply(t)
		}
	}

	in := readInput()
	rs.stepper.Frame(func(dt float64) {
		res := rs.sim.Step(dt, in)
		rs.env.Sound.Handle(res)
		if res.Lap != nil {
			rs.env.RecordLap(rs.sim.State(), res.Lap)
		}
		rs.hud.Update(rs.sim.State(), res.Lap)
	})
	rs.panel.NewBest = rs.hud.NewBest
	return nil
}

func (rs *RaceScreen) apply(t tweak) {
	cfg, changed := rs.sim.State().Config.Nudge(t.option, t.delta)
	if !changed {
		return
	}
	rebuilt := rs.sim.Reset(cfg)
	st := rs.sim.State()
	rs.stepper.SetStep(st.Derived.Step)
	rs.env.Config = st.Config
	rs.env.Profile.SetOptions(st.Config)
	o, _ := config.Lookup(t.option)
	monitoring.Logf("%s set to %d (track rebuilt: %v)", t.option, o.Get(st.Config), rebuilt)
}

// Draw renders the current frame
func (rs *RaceScreen) Draw(screen *ebiten.Image) {
	if rs.loading {
		screen.Fill(color.RGBA{20, 20, 30, 255})
		ebitenutil.DebugPrintAt(screen, "LOADING...", screen.Bounds().Dx()/2-30, screen.Bounds().Dy()/2)
		return
	}
	rs.canvas.SetTarget(screen)
	rs.stats = rs.renderer.Draw(rs.canvas, rs.sim.State())
	rs.panel.Draw(screen)

	_, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  segments %d/%d  sprites %d",
		ebiten.ActualFPS(), rs.stats.Drawn, rs.stats.Drawn+rs.stats.Culled, rs.stats.Sprites), 8, h-20)
}
