package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/player"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	monitoring.SetLogger(nil)
}

func race(t *testing.T, layout road.Layout) *sim.Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	cfg.TotalCars = 40
	return sim.New(cfg, layout, 0)
}

func TestFlatStraightTrackNeverShifts(t *testing.T) {
	s := race(t, road.Layout{
		{Pattern: road.Straight, Length: road.LengthLong},
		{Pattern: road.Straight, Length: road.LengthLong},
	})
	r := NewRenderer(1)
	fb := NewFramebuffer(320, 240)

	for i := 0; i < 20; i++ {
		for j := 0; j < 15; j++ {
			s.Step(s.State().Derived.Step, player.Input{Faster: true, Left: i%3 == 0})
		}
		stats := r.Draw(fb, s.State())
		require.Equal(t, 0.0, stats.MaxShift, "frame %d", i)
		require.Positive(t, stats.Drawn)
	}
}

func TestCurvesShiftTheRoad(t *testing.T) {
	s := race(t, road.Layout{{Pattern: road.Curve, Length: road.LengthLong, Curve: road.CurveHard}})
	stats := NewRenderer(1).Draw(NewFramebuffer(320, 240), s.State())
	assert.Greater(t, stats.MaxShift, 0.0)
}

func TestEverySegmentIsDrawnOrCulled(t *testing.T) {
	s := race(t, road.DefaultLayout())
	for i := 0; i < 300; i++ {
		s.Step(s.State().Derived.Step, player.Input{Faster: true})
	}
	stats := NewRenderer(1).Draw(NewFramebuffer(320, 240), s.State())
	assert.Equal(t, s.State().Config.DrawDistance, stats.Drawn+stats.Culled)
}

func TestFramePixels(t *testing.T) {
	s := race(t, road.Layout{{Pattern: road.Straight, Length: road.LengthLong}})
	fb := NewFramebuffer(320, 240)
	NewRenderer(1).Draw(fb, s.State())

	assert.Equal(t, Sky, fb.GetPixel(0, 0), "above the horizon")
	bottom := fb.GetPixel(160, 239)
	assert.Contains(t, []color.RGBA{road.Light.Road, road.Dark.Road}, bottom, "road under the car")
	edge := fb.GetPixel(0, 180)
	assert.Contains(t, []color.RGBA{road.Light.Grass, road.Dark.Grass}, edge, "grass beside the road")
}

func TestFrameWritesSegmentFields(t *testing.T) {
	s := race(t, road.DefaultLayout())
	st := s.State()
	st.Player.Position = st.Road.Length() - 20*st.Road.SegmentLength

	NewRenderer(1).Draw(NewFramebuffer(320, 240), st)

	base := st.BaseSegment()
	far := st.Road.Segment(base.Index + 100)
	assert.True(t, far.Looped)
	assert.Greater(t, far.P1.Camera.Z, 0.0, "looped segments are projected ahead of the camera")
	assert.Less(t, far.Fog, 1.0)
	assert.Greater(t, far.Fog, 0.0)
	assert.False(t, st.Road.Segment(base.Index+10).Looped)
	assert.InDelta(t, 1.0, base.Fog, 1e-12)
}

func TestSpriteClipping(t *testing.T) {
	sheet := image.NewRGBA(image.Rectangle{Max: sprite.SheetSize})
	f := &frame{c: NewFramebuffer(320, 240), width: 320, height: 240, roadWidth: 2000}

	assert.True(t, f.sprite(sheet, sprite.Car01, 0.001, 160, 200, -0.5, -1, 0))
	assert.False(t, f.sprite(sheet, sprite.Car01, 0.001, 160, 200, -0.5, -1, 100), "entirely below the clip line")
	assert.True(t, f.sprite(sheet, sprite.Car01, 0.001, 160, 200, -0.5, -1, 199), "partly visible")
	assert.False(t, f.sprite(nil, sprite.Car01, 0.001, 160, 200, -0.5, -1, 0), "nothing to draw from")
}

func TestSpritesNeedASheet(t *testing.T) {
	s := race(t, road.DefaultLayout())
	st := s.State()
	r := NewRenderer(1)

	stats := r.Draw(NewFramebuffer(320, 240), st)
	assert.Zero(t, stats.Sprites)

	st.Sheets.Sprites = image.NewRGBA(image.Rectangle{Max: sprite.SheetSize})
	stats = r.Draw(NewFramebuffer(320, 240), st)
	assert.Positive(t, stats.Sprites)
}

// recordingCanvas remembers the vertical offset of every blit.
type recordingCanvas struct {
	*Framebuffer
	blits []blit
}

type blit struct {
	img image.Image
	dy  float64
}

func (c *recordingCanvas) DrawImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64) {
	c.blits = append(c.blits, blit{img: img, dy: dy})
	c.Framebuffer.DrawImage(img, src, dx, dy, dw, dh)
}

func TestBackgroundLayersRiseWithTheRoad(t *testing.T) {
	s := race(t, road.Layout{{Pattern: road.Hill, Length: road.LengthLong, Height: road.HillHigh}})
	st := s.State()
	st.Player.Position = 150 * st.Road.SegmentLength
	bg := image.NewRGBA(image.Rectangle{Max: sprite.BackgroundSize})
	st.Sheets.Background = bg

	z := st.Player.Position + st.Derived.PlayerZ
	seg := st.Road.FindSegment(z)
	playerY := mathutil.Interpolate(seg.P1.World.Y, seg.P2.World.Y, mathutil.PercentRemaining(z, st.Road.SegmentLength))
	require.Positive(t, playerY)

	c := &recordingCanvas{Framebuffer: NewFramebuffer(320, 240)}
	NewRenderer(1).Draw(c, st)

	var offsets []float64
	for _, b := range c.blits {
		if b.img == image.Image(bg) {
			offsets = append(offsets, b.dy)
		}
	}
	require.Len(t, offsets, 3, "sky, hills and trees without wrapping")
	resolution := 240.0 / 480
	assert.InDelta(t, resolution*sim.SkySpeed*playerY, offsets[0], 1e-9)
	assert.InDelta(t, resolution*sim.HillSpeed*playerY, offsets[1], 1e-9)
	assert.InDelta(t, resolution*sim.TreeSpeed*playerY, offsets[2], 1e-9)
}

func TestPlayerSprite(t *testing.T) {
	tests := []struct {
		steer, updown float64
		want          sprite.ID
	}{
		{-1, 0, sprite.PlayerLeft},
		{-1, 5, sprite.PlayerUphillLeft},
		{0, 0, sprite.PlayerStraight},
		{0, 5, sprite.PlayerUphillStraight},
		{0, -5, sprite.PlayerStraight},
		{1, 0, sprite.PlayerRight},
		{1, 5, sprite.PlayerUphillRight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlayerSprite(tt.steer, tt.updown), "steer %v updown %v", tt.steer, tt.updown)
	}
}

func TestStripWidths(t *testing.T) {
	assert.Equal(t, 100.0, RumbleWidth(600, 1))
	assert.Equal(t, 100.0, RumbleWidth(600, 3))
	assert.Equal(t, 75.0, RumbleWidth(600, 4))
	assert.Equal(t, 20.0, LaneMarkerWidth(640, 3))
	assert.Equal(t, 20.0, LaneMarkerWidth(640, 4))
}

func TestFramebufferFillQuad(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	red := color.RGBA{255, 0, 0, 255}
	fb.FillQuad(2, 8, 8, 8, 8, 2, 2, 2, red)

	assert.Equal(t, red, fb.GetPixel(2, 2))
	assert.Equal(t, red, fb.GetPixel(7, 7))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(1, 5))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(8, 5))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(5, 8))
}

func TestFramebufferFillQuadTrapezoid(t *testing.T) {
	fb := NewFramebuffer(20, 10)
	c := color.RGBA{0, 0, 255, 255}
	// narrow at the top, wide at the bottom, like a road segment
	fb.FillQuad(0, 10, 20, 10, 15, 0, 5, 0, c)

	assert.Equal(t, c, fb.GetPixel(10, 0))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(1, 0))
	assert.Equal(t, c, fb.GetPixel(1, 9))
}

func TestFramebufferFillRectBlends(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(color.RGBA{255, 255, 255, 255})
	fb.FillRect(0, 4, 4, -2, color.RGBA{0, 0, 0, 128})

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, fb.GetPixel(0, 1))
	got := fb.GetPixel(0, 3)
	assert.InDelta(t, 127, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestFramebufferDrawImageScales(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	a := color.NRGBA{255, 0, 0, 255}
	b := color.NRGBA{0, 255, 0, 255}
	src.SetNRGBA(0, 0, a)
	src.SetNRGBA(1, 1, b)

	fb := NewFramebuffer(4, 4)
	fb.DrawImage(src, src.Bounds(), 0, 0, 4, 4)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fb.GetPixel(1, 1))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, fb.GetPixel(2, 3))
	assert.Equal(t, color.RGBA{}, fb.GetPixel(3, 0), "transparent source pixels are skipped")
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(Sky)
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, fb.SavePNG(path))
	assert.Error(t, fb.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}
