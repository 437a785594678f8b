// Package road owns the track: an ordered, cyclic sequence of fixed-length
// segments carrying curvature, elevation, paint, roadside decorations and the
// traffic currently inside each one.
package road

import (
	"fmt"
	"math"

	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/sprite"
	"github.com/golangdaddy/outrun/pkg/vehicle"
)

// Decoration is a roadside sprite fixed at a lateral offset. Offsets are in
// road half-widths; |offset| > 1 is off the tarmac.
type Decoration struct {
	Sprite sprite.ID
	Offset float64
}

// Segment is one slice of track between P1 (near) and P2 (far).
type Segment struct {
	Index       int
	P1, P2      mathutil.Point
	Curve       float64
	Band        Band
	Decorations []Decoration
	// Vehicles holds indexes into Road.Vehicles in arrival order.
	Vehicles []int

	// Per-frame values written by the renderer.
	Looped bool
	Fog    float64
	Clip   float64
}

// Vehicle is a piece of traffic. Each vehicle is listed in exactly one
// segment's Vehicles at any time.
type Vehicle struct {
	Sprite  sprite.ID
	Class   vehicle.Class
	Offset  float64
	Z       float64
	Speed   float64
	Percent float64 // how far through its segment, for render interpolation
}

// Width is the vehicle's footprint in road half-widths.
func (v *Vehicle) Width() float64 {
	return v.Sprite.Width()
}

// Road is the arena holding every segment and vehicle.
type Road struct {
	Segments      []Segment
	Vehicles      []Vehicle
	SegmentLength float64
	RumbleLength  int
}

// New returns an empty road.
func New(segmentLength float64, rumbleLength int) *Road {
	if rumbleLength < 1 {
		rumbleLength = 1
	}
	return &Road{
		SegmentLength: segmentLength,
		RumbleLength:  rumbleLength,
	}
}

// Length is the total z length of one lap.
func (r *Road) Length() float64 {
	return float64(len(r.Segments)) * r.SegmentLength
}

// SegmentIndex maps any world z, including negative and past-the-end values,
// to a segment index.
func (r *Road) SegmentIndex(z float64) int {
	n := len(r.Segments)
	if n == 0 {
		panic("road: segment lookup on an empty road")
	}
	if math.IsNaN(z) || math.IsInf(z, 0) {
		panic(fmt.Sprintf("road: no segment for z=%v", z))
	}
	i := int(math.Mod(math.Floor(z/r.SegmentLength), float64(n)))
	if i < 0 {
		i += n
	}
	return i
}

// FindSegment returns the segment containing z.
func (r *Road) FindSegment(z float64) *Segment {
	return &r.Segments[r.SegmentIndex(z)]
}

// Segment returns segment i, wrapping around the lap.
func (r *Road) Segment(i int) *Segment {
	n := len(r.Segments)
	return &r.Segments[((i%n)+n)%n]
}

// LastY is the elevation at the end of the last segment.
func (r *Road) LastY() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].P2.World.Y
}

// AddSegment appends a segment ending at elevation y. It starts wherever the
// previous segment ended so the surface has no steps.
func (r *Road) AddSegment(curve, y float64) {
	n := len(r.Segments)
	r.Segments = append(r.Segments, Segment{
		Index: n,
		P1:    mathutil.Point{World: mathutil.Vec3{Y: r.LastY(), Z: float64(n) * r.SegmentLength}},
		P2:    mathutil.Point{World: mathutil.Vec3{Y: y, Z: float64(n+1) * r.SegmentLength}},
		Curve: curve,
		Band:  bandFor(n, r.RumbleLength),
	})
}

// AddDecoration attaches a sprite to segment n. Indexes off the track are
// ignored.
func (r *Road) AddDecoration(n int, id sprite.ID, offset float64) {
	if n < 0 || n >= len(r.Segments) {
		return
	}
	r.Segments[n].Decorations = append(r.Segments[n].Decorations, Decoration{Sprite: id, Offset: offset})
}

// AddVehicle stores v and lists it in the segment at v.Z. It returns the
// vehicle's index.
func (r *Road) AddVehicle(v Vehicle) int {
	v.Z = mathutil.Increase(v.Z, 0, r.Length())
	v.Percent = mathutil.PercentRemaining(v.Z, r.SegmentLength)
	idx := len(r.Vehicles)
	r.Vehicles = append(r.Vehicles, v)
	seg := r.FindSegment(v.Z)
	seg.Vehicles = append(seg.Vehicles, idx)
	return idx
}

// MoveVehicle sets vehicle i's z and moves it to its new segment if it
// crossed a boundary. It reports whether the vehicle changed segment.
func (r *Road) MoveVehicle(i int, z float64) bool {
	v := &r.Vehicles[i]
	from := r.SegmentIndex(v.Z)
	v.Z = z
	v.Percent = mathutil.PercentRemaining(z, r.SegmentLength)
	to := r.SegmentIndex(z)
	if from == to {
		return false
	}

	old := &r.Segments[from]
	at := -1
	for k, idx := range old.Vehicles {
		if idx == i {
			at = k
			break
		}
	}
	if at < 0 {
		panic(fmt.Sprintf("road: vehicle %d missing from segment %d", i, from))
	}
	old.Vehicles = append(old.Vehicles[:at], old.Vehicles[at+1:]...)
	r.Segments[to].Vehicles = append(r.Segments[to].Vehicles, i)
	return true
}

// CheckMembership verifies every vehicle is listed once, in the segment its z
// falls in.
func (r *Road) CheckMembership() error {
	seen := make([]int, len(r.Vehicles))
	for s := range r.Segments {
		for _, idx := range r.Segments[s].Vehicles {
			if idx < 0 || idx >= len(r.Vehicles) {
				return fmt.Errorf("segment %d lists unknown vehicle %d", s, idx)
			}
			seen[idx]++
			if want := r.SegmentIndex(r.Vehicles[idx].Z); want != s {
				return fmt.Errorf("vehicle %d listed in segment %d but z=%.1f is in segment %d", idx, s, r.Vehicles[idx].Z, want)
			}
		}
	}
	for idx, n := range seen {
		if n != 1 {
			return fmt.Errorf("vehicle %d listed %d times", idx, n)
		}
	}
	return nil
}
