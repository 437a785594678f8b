package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/outrun/pkg/game"
	"github.com/golangdaddy/outrun/pkg/laps"
	"github.com/golangdaddy/outrun/pkg/models"
	"github.com/golangdaddy/outrun/pkg/sound"
)

func main() {
	configPath := flag.String("config", "", "JSON tuning file")
	profilePath := flag.String("profile", "profile.json", "player profile file")
	dbPath := flag.String("db", "laps.db", "lap history database, empty to disable")
	assetsDir := flag.String("assets", "assets", "directory holding sprites.png and background.png")
	name := flag.String("name", "Player", "player name for a new profile")
	seed := flag.Int64("seed", 0, "track seed, 0 for a random track")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	profile := models.OpenStore(*profilePath, *name)

	cfg := profile.StartConfig(*configPath, *seed)

	var history *laps.Store
	if *dbPath != "" {
		var err error
		history, err = laps.Open(*dbPath)
		if err != nil {
			log.Printf("lap history disabled: %v", err)
			history = nil
		}
	}

	snd, err := sound.New()
	if err != nil {
		log.Printf("sound disabled: %v", err)
	}
	snd.SetMuted(*mute)

	env := &game.Env{
		Config:    cfg,
		AssetsDir: *assetsDir,
		Profile:   profile,
		Laps:      history,
		Sound:     snd,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("OutRun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(game.NewGame(env)); err != nil {
		// log.Fatal skips deferred calls
		if history != nil {
			history.Close()
		}
		log.Fatal(err)
	}

	if err := profile.Save(); err != nil {
		log.Printf("could not save profile: %v", err)
	}
	printSummary(history)
	if history != nil {
		history.Close()
	}
}

// printSummary reports this session's laps.
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
