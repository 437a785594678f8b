package render

import (
	"image"
	"math"
	"math/rand"

	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sprite"
)

// Stats describes the last frame.
type Stats struct {
	Drawn  int // segments painted
	Culled int // segments skipped as hidden
	// MaxShift is the largest horizontal curve shift applied to any
	// segment.
	MaxShift float64
	Sprites  int
}

// Renderer draws frames of a race.
type Renderer struct {
	rng *rand.Rand
}

// NewRenderer creates a renderer. seed drives the player sprite bounce.
func NewRenderer(seed int64) *Renderer {
	return &Renderer{rng: rand.New(rand.NewSource(seed))}
}

// frame holds values shared by every draw call of one frame.
type frame struct {
	c          Canvas
	st         *sim.State
	width      float64
	height     float64
	roadWidth  float64
	resolution float64
}

// Draw renders st onto c. It writes the per-frame projection, fog, clip and
// loop fields of the visible segments.
func (r *Renderer) Draw(c Canvas, st *sim.State) Stats {
	w, h := c.Size()
	f := &frame{
		c:          c,
		st:         st,
		width:      float64(w),
		height:     float64(h),
		roadWidth:  float64(st.Config.RoadWidth),
		resolution: float64(h) / 480,
	}
	rd := st.Road
	cfg := st.Config
	d := st.Derived
	length := rd.Length()
	position := st.Player.Position

	base := rd.FindSegment(position)
	basePercent := mathutil.PercentRemaining(position, rd.SegmentLength)
	playerSeg := rd.FindSegment(position + d.PlayerZ)
	playerPercent := mathutil.PercentRemaining(position+d.PlayerZ, rd.SegmentLength)
	playerY := mathutil.Interpolate(playerSeg.P1.World.Y, playerSeg.P2.World.Y, playerPercent)

	c.Clear(Sky)
	if bg := st.Sheets.Background; bg != nil {
		f.background(bg, sprite.Sky, st.Parallax.Sky, f.resolution*sim.SkySpeed*playerY)
		f.background(bg, sprite.Hills, st.Parallax.Hill, f.resolution*sim.HillSpeed*playerY)
		f.background(bg, sprite.Trees, st.Parallax.Tree, f.resolution*sim.TreeSpeed*playerY)
	}

	var stats Stats
	maxy := f.height
	x := 0.0
	dx := -(base.Curve * basePercent)
	camX := st.Player.X * f.roadWidth
	camY := playerY + float64(cfg.CameraHeight)

	for n := 0; n < cfg.DrawDistance; n++ {
		seg := rd.Segment(base.Index + n)
		seg.Looped = seg.Index < base.Index
		seg.Fog = mathutil.ExponentialFog(float64(n)/float64(cfg.DrawDistance), float64(cfg.FogDensity))
		seg.Clip = maxy

		camZ := position
		if seg.Looped {
			camZ -= length
		}
		cam := mathutil.Camera{Y: camY, Z: camZ, Depth: d.CameraDepth, Width: f.width, Height: f.height, RoadWidth: f.roadWidth}
		cam.X = camX - x
		mathutil.Project(&seg.P1, cam)
		cam.X = camX - x - dx
		mathutil.Project(&seg.P2, cam)

		x += dx
		dx += seg.Curve
		stats.MaxShift = math.Max(stats.MaxShift, math.Max(math.Abs(x), math.Abs(dx)))

		if seg.P1.Camera.Z <= d.CameraDepth ||
			seg.P2.Screen.Y >= seg.P1.Screen.Y ||
			seg.P2.Screen.Y >= maxy {
			stats.Culled++
			continue
		}
		f.segment(cfg.Lanes, seg)
		maxy = seg.P1.Screen.Y
		stats.Drawn++
	}

	sheet := st.Sheets.Sprites
	for n := cfg.DrawDistance - 1; n > 0; n-- {
		seg := rd.Segment(base.Index + n)

		for _, vi := range seg.Vehicles {
			v := &rd.Vehicles[vi]
			scale := mathutil.Interpolate(seg.P1.Screen.Scale, seg.P2.Screen.Scale, v.Percent)
			sx := mathutil.Interpolate(seg.P1.Screen.X, seg.P2.Screen.X, v.Percent) + scale*v.Offset*f.roadWidth*f.width/2
			sy := mathutil.Interpolate(seg.P1.Screen.Y, seg.P2.Screen.Y, v.Percent)
			if f.sprite(sheet, v.Sprite, scale, sx, sy, -0.5, -1, seg.Clip) {
				stats.Sprites++
			}
		}

		for _, dec := range seg.Decorations {
			scale := seg.P1.Screen.Scale
			sx := seg.P1.Screen.X + scale*dec.Offset*f.roadWidth*f.width/2
			offsetX := 0.0
			if dec.Offset < 0 {
				offsetX = -1
			}
			if f.sprite(sheet, dec.Sprite, scale, sx, seg.P1.Screen.Y, offsetX, -1, seg.Clip) {
				stats.Sprites++
			}
		}

		if seg == playerSeg {
			scale := d.CameraDepth / d.PlayerZ
			camYAt := mathutil.Interpolate(playerSeg.P1.Camera.Y, playerSeg.P2.Camera.Y, playerPercent)
			y := f.height/2 - scale*camYAt*f.height/2
			speedPercent := st.Player.Speed / d.MaxSpeed
			steer := st.Player.Speed * float64(st.Input.Steer())
			updown := playerSeg.P2.World.Y - playerSeg.P1.World.Y
			bounce := 1.5 * r.rng.Float64() * speedPercent * f.resolution * mathutil.RandomSign(r.rng)
			if f.sprite(sheet, PlayerSprite(steer, updown), scale, f.width/2, y+bounce, -0.5, -1, 0) {
				stats.Sprites++
			}
		}
	}
	return stats
}

// PlayerSprite picks the player car image for the steering direction and
// the slope under the car.
func PlayerSprite(steer, updown float64) sprite.ID {
	uphill := updown > 0
	switch {
	case steer < 0 && uphill:
		return sprite.PlayerUphillLeft
	case steer < 0:
		return sprite.PlayerLeft
	case steer > 0 && uphill:
		return sprite.PlayerUphillRight
	case steer > 0:
		return sprite.PlayerRight
	case uphill:
		return sprite.PlayerUphillStraight
	default:
		return sprite.PlayerStraight
	}
}

// RumbleWidth is the pixel width of the rumble strip beside a road half
// projected w pixels wide.
func RumbleWidth(w float64, lanes int) float64 {
	return w / math.Max(6, 2*float64(lanes))
}

// LaneMarkerWidth is the pixel width of a lane marker.
func LaneMarkerWidth(w float64, lanes int) float64 {
	return w / math.Max(32, 8*float64(lanes))
}

// background draws one parallax layer, wrapping the strip horizontally when
// the scroll runs past its end.
func (f *frame) background(img image.Image, layer sprite.Layer, rotation, offset float64) {
	fr := layer.Frame()
	imageW := float64(fr.W) / 2
	imageH := float64(fr.H)

	srcX := float64(fr.X) + math.Floor(float64(fr.W)*rotation)
	srcW := math.Min(imageW, float64(fr.X+fr.W)-srcX)
	destW := math.Floor(f.width * (srcW / imageW))

	src := image.Rect(int(srcX), fr.Y, int(srcX+srcW), fr.Y+int(imageH))
	f.c.DrawImage(img, src, 0, offset, destW, f.height)
	if srcW < imageW {
		rest := image.Rect(fr.X, fr.Y, fr.X+int(imageW-srcW), fr.Y+int(imageH))
		f.c.DrawImage(img, rest, destW-1, offset, f.width-destW, f.height)
	}
}

// segment paints grass, rumble strips, road, lane markers and fog for one
// segment.
func (f *frame) segment(lanes int, seg *road.Segment) {
	x1, y1, w1 := seg.P1.Screen.X, seg.P1.Screen.Y, seg.P1.Screen.W
	x2, y2, w2 := seg.P2.Screen.X, seg.P2.Screen.Y, seg.P2.Screen.W
	band := seg.Band
	c := f.c

	r1, r2 := RumbleWidth(w1, lanes), RumbleWidth(w2, lanes)
	l1, l2 := LaneMarkerWidth(w1, lanes), LaneMarkerWidth(w2, lanes)

	c.FillRect(0, y2, f.width, y1-y2, band.Grass)
	c.FillQuad(x1-w1-r1, y1, x1-w1, y1, x2-w2, y2, x2-w2-r2, y2, band.Rumble)
	c.FillQuad(x1+w1+r1, y1, x1+w1, y1, x2+w2, y2, x2+w2+r2, y2, band.Rumble)
	c.FillQuad(x1-w1, y1, x1+w1, y1, x2+w2, y2, x2-w2, y2, band.Road)

	if band.HasLane() && lanes > 1 {
		lw1 := w1 * 2 / float64(lanes)
		lw2 := w2 * 2 / float64(lanes)
		lx1 := x1 - w1 + lw1
		lx2 := x2 - w2 + lw2
		for lane := 1; lane < lanes; lane++ {
			c.FillQuad(lx1-l1/2, y1, lx1+l1/2, y1, lx2+l2/2, y2, lx2-l2/2, y2, band.Lane)
			lx1 += lw1
			lx2 += lw2
		}
	}

	if seg.Fog < 1 {
		fog := Fog
		fog.A = uint8(math.Round((1 - seg.Fog) * 255))
		c.FillRect(0, y1, f.width, y2-y1, fog)
	}
}

// sprite draws id scaled for its distance, anchored at (x, y) and shifted by
// offsetX and offsetY sprite sizes. Rows below clipY are cut off; a clipY of
// zero disables clipping. It reports whether anything was drawn, which is
// never the case without a sheet.
func (f *frame) sprite(sheet image.Image, id sprite.ID, scale, x, y, offsetX, offsetY, clipY float64) bool {
	fr := id.Frame()
	k := scale * f.width / 2 * sprite.Scale * f.roadWidth
	destW := float64(fr.W) * k
	destH := float64(fr.H) * k
	x += destW * offsetX
	y += destH * offsetY

	clipH := 0.0
	if clipY != 0 {
		clipH = math.Max(0, y+destH-clipY)
	}
	if sheet == nil || clipH >= destH || destW <= 0 {
		return false
	}
	srcH := float64(fr.H) - float64(fr.H)*clipH/destH
	src := image.Rect(fr.X, fr.Y, fr.X+fr.W, fr.Y+int(math.Round(srcH)))
	f.c.DrawImage(sheet, src, x, y, destW, destH-clipH)
	return true
}
