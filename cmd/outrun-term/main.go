// Command outrun-term races in the terminal. Each character cell shows two
// pixels using half blocks, so the view is as wide as the terminal and
// twice as tall.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/golangdaddy/outrun/pkg/assets"
	"github.com/golangdaddy/outrun/pkg/hud"
	"github.com/golangdaddy/outrun/pkg/laps"
	"github.com/golangdaddy/outrun/pkg/loop"
	"github.com/golangdaddy/outrun/pkg/models"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/render"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sound"
)

var (
	configPath  = flag.String("config", "", "JSON tuning file")
	profilePath = flag.String("profile", "profile.json", "player profile file")
	dbPath      = flag.String("db", "laps.db", "lap history database, empty to disable")
	assetsDir   = flag.String("assets", "assets", "directory holding sprites.png and background.png")
	logPath     = flag.String("log", "", "write diagnostics to this file instead of discarding them")
	seed        = flag.Int64("seed", 0, "track seed, 0 for a random track")
	mute        = flag.Bool("mute", false, "start with sound off")
)

var (
	hudFg = color.RGBA{230, 230, 240, 255}
	hudBg = color.RGBA{0, 0, 0, 255}
)

func main() {
	flag.Parse()

	// the alternate screen is ours, stray log lines would tear it
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		monitoring.SetLogger(log.New(f, "", log.LstdFlags).Printf)
	} else {
		monitoring.SetLogger(nil)
	}

	history, err := run()
	if err != nil {
		// log.Fatal skips deferred calls
		if history != nil {
			history.Close()
		}
		log.Fatal(err)
	}
	printSummary(history)
	if history != nil {
		history.Close()
	}
}

func run() (*laps.Store, error) {
	profile := models.OpenStore(*profilePath, "Player")
	cfg := profile.StartConfig(*configPath, *seed)

	var history *laps.Store
	if *dbPath != "" {
		var err error
		if history, err = laps.Open(*dbPath); err != nil {
			monitoring.Logf("lap history disabled: %v", err)
			history = nil
		}
	}

	snd, err := sound.New()
	if err != nil {
		monitoring.Logf("sound disabled: %v", err)
	}
	snd.SetMuted(*mute)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return history, fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return history, fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	best, _ := profile.BestLap()
	s := sim.New(cfg, road.DefaultLayout(), best)
	// nothing is drawn until both sheets are in
	sheets, err := assets.Load(ctx, *assetsDir)
	if err != nil {
		cleanup()
		return history, err
	}
	sheets.Deliver(s.State())

	var (
		held   keys
		sizeMu sync.Mutex
	)

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				sizeMu.Lock()
				width, height = ev.Width, ev.Height
				sizeMu.Unlock()
				term.Erase()
				term.Resize(ev.Width, ev.Height)

			case uv.KeyPressEvent:
				now := time.Now()
				switch {
				case ev.MatchString("ctrl+c"), ev.MatchString("q"), ev.MatchString("escape"):
					cancel()
					return
				case ev.MatchString("w", "up"):
					held.press(controlFaster, now)
				case ev.MatchString("s", "down"):
					held.press(controlSlower, now)
				case ev.MatchString("a", "left"):
					held.press(controlLeft, now)
				case ev.MatchString("d", "right"):
					held.press(controlRight, now)
				case ev.MatchString("m"):
					snd.SetMuted(!snd.Muted())
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w", "up"):
					held.release(controlFaster)
				case ev.MatchString("s", "down"):
					held.release(controlSlower)
				case ev.MatchString("a", "left"):
					held.release(controlLeft)
				case ev.MatchString("d", "right"):
					held.release(controlRight)
				}
			}
		}
	}()

	readout := hud.New(cfg.FPS, nil)
	renderer := render.NewRenderer(s.Seed())
	stepper := loop.NewStepper(s.State().Derived.Step, nil)
	var fb *render.Framebuffer

	targetDuration := time.Second / time.Duration(s.State().Config.FPS)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return history, nil
		default:
		}
		now := time.Now()

		in := held.input(now)
		stepper.Frame(func(dt float64) {
			res := s.Step(dt, in)
			snd.Handle(res)
			if res.Lap != nil {
				recordLap(history, profile, s.State(), res.Lap)
			}
			readout.Update(s.State(), res.Lap)
		})

		sizeMu.Lock()
		cols, rows := width, height
		sizeMu.Unlock()
		// the top row is the HUD
		if fb == nil || fb.Width != cols || fb.Height != (rows-1)*2 {
			fb = render.NewFramebuffer(cols, max(rows-1, 1)*2)
		}

		renderer.Draw(fb, s.State())
		fb.Draw(term, uv.Rect(0, 1, cols, rows-1))
		render.DrawText(term, 0, 0, padRight(hudLine(readout, snd.Muted()), cols), hudFg, hudBg)
		if err := term.Display(); err != nil {
			cleanup()
			return history, fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func hudLine(h *hud.HUD, muted bool) string {
	or := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	line := fmt.Sprintf(" SPEED %3s  TIME %s  LAST %s  BEST %s  %s",
		or(h.Text(hud.Speed)), or(h.Text(hud.CurrentLap)), or(h.Text(hud.LastLap)), or(h.Text(hud.BestLap)), h.Text(hud.Rank))
	if h.NewBest {
		line += "  NEW BEST"
	}
	if muted {
		line += "  [muted]"
	}
	return line
}

func padRight(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func recordLap(history *laps.Store, profile *models.Store, st *sim.State, lap *sim.LapRecord) {
	if history != nil {
		if err := history.Record(lap.Number, lap.Time, lap.MaxSpeed, lap.Collisions); err != nil {
			monitoring.Logf("could not record lap %d: %v", lap.Number, err)
		}
	}
	profile.RecordLap(st.Road.Length())
	if lap.NewBest {
		profile.SetBestLap(lap.Time)
	}
}

func printSummary(history *laps.Store) {
	if history == nil {
		return
	}
	stats, err := history.Stats(history.Session())
	switch {
	case errors.Is(err, laps.ErrNoLaps):
		fmt.Println("no laps completed")
	case err != nil:
		log.Printf("no lap summary: %v", err)
	default:
		fmt.Println(stats)
	}
}
