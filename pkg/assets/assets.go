// Package assets loads the sprite and background sheets, painting stand-ins
// for any sheet that cannot be read.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/golangdaddy/outrun/pkg/background"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sprite"
)

// File names looked up in the asset directory.
const (
	SpritesFile    = "sprites.png"
	BackgroundFile = "background.png"
)

// Bundle is a decoded pair of sheets. Generated reports which sheets were
// painted instead of loaded.
type Bundle struct {
	Sprites    image.Image
	Background image.Image
	Generated  []string
}

// Deliver hands the sheets to the simulation.
func (b *Bundle) Deliver(st *sim.State) {
	st.Sheets = sim.Sheets{Sprites: b.Sprites, Background: b.Background}
}

// Load decodes both sheets from dir. A sheet that is missing, unreadable or
// too small for its frames is replaced by a generated one, so the bundle is
// always complete. The only error is ctx ending before the sheets are read.
func Load(ctx context.Context, dir string) (*Bundle, error) {
	b := &Bundle{}
	var spritesErr, backgroundErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.Sprites, spritesErr = decode(filepath.Join(dir, SpritesFile), sprite.SheetSize)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		b.Background, backgroundErr = decode(filepath.Join(dir, BackgroundFile), sprite.BackgroundSize)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load sheets: %w", err)
	}

	gen := background.NewGenerator(1)
	if spritesErr != nil {
		monitoring.Logf("using generated sprites: %v", spritesErr)
		b.Sprites = gen.Sprites()
		b.Generated = append(b.Generated, SpritesFile)
	}
	if backgroundErr != nil {
		monitoring.Logf("using generated background: %v", backgroundErr)
		b.Background = gen.Background()
		b.Generated = append(b.Generated, BackgroundFile)
	}
	return b, nil
}

func decode(path string, min image.Point) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	size := img.Bounds().Size()
	if size.X < min.X || size.Y < min.Y {
		return nil, fmt.Errorf("%s is %v, need at least %v", path, size, min)
	}
	return img, nil
}

// Prefetch loads the sheets in the background and posts the bundle to
// inbox. Nothing is sent if ctx is cancelled first. The returned channel is
// closed once the goroutine is done.
func Prefetch(ctx context.Context, dir string, inbox chan<- sim.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		b, err := Load(ctx, dir)
		if err != nil {
			monitoring.Logf("sheets not delivered: %v", err)
			return
		}
		select {
		case inbox <- b:
		case <-ctx.Done():
		}
	}()
	return done
}
