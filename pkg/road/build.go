package road

import "github.com/golangdaddy/outrun/pkg/mathutil"

// Segment counts.
const (
	LengthNone   = 0
	LengthShort  = 25
	LengthMedium = 50
	LengthLong   = 100
)

// Elevation changes, in segment lengths.
const (
	HillNone   = 0
	HillLow    = 20
	HillMedium = 40
	HillHigh   = 60
)

// Curvature.
const (
	CurveNone   = 0
	CurveEasy   = 2
	CurveMedium = 4
	CurveHard   = 6
)

// Pattern is a named piece of road built from one or more arcs.
type Pattern int

const (
	Straight Pattern = iota
	Hill
	Curve
	LowRollingHills
	SCurves
	Bumps
	DownhillToEnd
)

func (p Pattern) String() string {
	switch p {
	case Straight:
		return "straight"
	case Hill:
		return "hill"
	case Curve:
		return "curve"
	case LowRollingHills:
		return "low-rolling-hills"
	case SCurves:
		return "s-curves"
	case Bumps:
		return "bumps"
	case DownhillToEnd:
		return "downhill-to-end"
	default:
		return "unknown"
	}
}

// Piece is one pattern with its parameters. Zero Length or Height picks the
// pattern's default.
type Piece struct {
	Pattern Pattern
	Length  int
	Curve   float64
	Height  float64
}

// Layout is the ordered list of pieces making up a lap.
type Layout []Piece

// DefaultLayout is the stock lap.
func DefaultLayout() Layout {
	return Layout{
		{Pattern: Straight, Length: LengthShort},
		{Pattern: LowRollingHills},
		{Pattern: SCurves},
		{Pattern: Curve, Length: LengthMedium, Curve: CurveMedium, Height: HillLow},
		{Pattern: Bumps},
		{Pattern: LowRollingHills},
		{Pattern: Curve, Length: LengthLong * 2, Curve: CurveMedium, Height: HillMedium},
		{Pattern: Straight},
		{Pattern: Hill, Length: LengthMedium, Height: HillHigh},
		{Pattern: SCurves},
		{Pattern: Curve, Length: LengthLong, Curve: -CurveMedium, Height: HillNone},
		{Pattern: Straight},
		{Pattern: Hill, Length: LengthLong, Height: HillHigh},
		{Pattern: Curve, Length: LengthLong, Curve: CurveMedium, Height: -HillLow},
		{Pattern: Bumps},
		{Pattern: Hill, Length: LengthLong, Height: -HillMedium},
		{Pattern: Straight},
		{Pattern: SCurves},
		{Pattern: DownhillToEnd},
	}
}

// Params are the build inputs taken from the configuration.
type Params struct {
	SegmentLength float64
	RumbleLength  int
	// PlayerZ positions the start band just ahead of the player car.
	PlayerZ float64
}

// Build lays out the segments for layout and paints the start and finish
// bands. The geometry is fully determined by its arguments.
func Build(layout Layout, p Params) *Road {
	r := New(p.SegmentLength, p.RumbleLength)
	for _, piece := range layout {
		r.add(piece)
	}
	if len(r.Segments) == 0 {
		r.AddRoad(LengthShort, LengthShort, LengthShort, 0, 0)
	}
	r.paintStartFinish(p.PlayerZ)
	return r
}

func (r *Road) add(piece Piece) {
	n := piece.Length
	switch piece.Pattern {
	case Straight:
		n = orInt(n, LengthMedium)
		r.AddRoad(n, n, n, 0, 0)
	case Hill:
		n = orInt(n, LengthMedium)
		r.AddRoad(n, n, n, 0, orFloat(piece.Height, HillMedium))
	case Curve:
		n = orInt(n, LengthMedium)
		r.AddRoad(n, n, n, orFloat(piece.Curve, CurveMedium), piece.Height)
	case LowRollingHills:
		n = orInt(n, LengthShort)
		h := orFloat(piece.Height, HillLow)
		r.AddRoad(n, n, n, 0, h/2)
		r.AddRoad(n, n, n, 0, -h)
		r.AddRoad(n, n, n, CurveEasy, h)
		r.AddRoad(n, n, n, 0, 0)
		r.AddRoad(n, n, n, -CurveEasy, h/2)
		r.AddRoad(n, n, n, 0, 0)
	case SCurves:
		m := LengthMedium
		r.AddRoad(m, m, m, -CurveEasy, HillNone)
		r.AddRoad(m, m, m, CurveMedium, HillMedium)
		r.AddRoad(m, m, m, CurveEasy, -HillLow)
		r.AddRoad(m, m, m, -CurveEasy, HillMedium)
		r.AddRoad(m, m, m, -CurveMedium, -HillMedium)
	case Bumps:
		for _, h := range []float64{5, -2, -5, 8, 5, -7, 5, -2} {
			r.AddRoad(10, 10, 10, 0, h)
		}
	case DownhillToEnd:
		n = orInt(n, 200)
		r.AddRoad(n, n, n, -CurveEasy, -r.LastY()/r.SegmentLength)
	}
}

// AddRoad appends one arc. Curvature eases in over enter segments, holds,
// then eases out over leave segments. Elevation eases across the whole arc
// by y segment lengths relative to where the road currently ends.
func (r *Road) AddRoad(enter, hold, leave int, curve, y float64) {
	startY := r.LastY()
	endY := startY + y*r.SegmentLength
	total := float64(enter + hold + leave)
	for n := 0; n < enter; n++ {
		r.AddSegment(mathutil.EaseIn(0, curve, float64(n)/float64(enter)), mathutil.EaseInOut(startY, endY, float64(n)/total))
	}
	for n := 0; n < hold; n++ {
		r.AddSegment(curve, mathutil.EaseInOut(startY, endY, float64(enter+n)/total))
	}
	for n := 0; n < leave; n++ {
		r.AddSegment(mathutil.EaseInOut(curve, 0, float64(n)/float64(leave)), mathutil.EaseInOut(startY, endY, float64(enter+hold+n)/total))
	}
}

func (r *Road) paintStartFinish(playerZ float64) {
	start := r.SegmentIndex(playerZ)
	r.Segment(start + 2).Band = Start
	r.Segment(start + 3).Band = Start
	for n := 0; n < r.RumbleLength && n < len(r.Segments); n++ {
		r.Segments[len(r.Segments)-1-n].Band = Finish
	}
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
