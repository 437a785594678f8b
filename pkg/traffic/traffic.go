// Package traffic moves the computer-driven vehicles around the lap and
// steers them around slower vehicles and the player.
package traffic

import (
	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/road"
)

// DefaultLookahead is how many segments ahead a vehicle checks for traffic.
const DefaultLookahead = 20

const (
	avoidTolerance = 1.2
	offRoadNudge   = 0.1
	offRoadEdge    = 0.9
	decisiveSide   = 0.5
)

// Player is what traffic needs to know about the player car.
type Player struct {
	Segment int
	X       float64
	Width   float64
	Speed   float64
}

// Controller advances traffic one fixed step at a time.
type Controller struct {
	MaxSpeed     float64
	DrawDistance int
	Lookahead    int
}

// NewController returns a controller with the default lookahead.
func NewController(maxSpeed float64, drawDistance int) *Controller {
	return &Controller{
		MaxSpeed:     maxSpeed,
		DrawDistance: drawDistance,
		Lookahead:    DefaultLookahead,
	}
}

// Advance steers, moves and re-files every vehicle in order.
func (c *Controller) Advance(r *road.Road, p Player, dt float64) {
	length := r.Length()
	for i := range r.Vehicles {
		v := &r.Vehicles[i]
		v.Offset += c.AvoidanceOffset(r, i, p)
		r.MoveVehicle(i, mathutil.Increase(v.Z, dt*v.Speed, length))
	}
}

// AvoidanceOffset is the lateral nudge for vehicle i this step. Segments
// ahead are checked nearest first; in each one the player is considered
// before the vehicles already there, and the first conflict decides the
// steer. A vehicle with nothing ahead that has drifted off the road is
// pushed back on.
func (c *Controller) AvoidanceOffset(r *road.Road, i int, p Player) float64 {
	v := &r.Vehicles[i]
	carSegment := r.SegmentIndex(v.Z)

	// out of sight of the player
	if carSegment-p.Segment > c.DrawDistance {
		return 0
	}

	width := v.Width()
	for d := 1; d < c.Lookahead; d++ {
		seg := r.Segment(carSegment + d)

		if seg.Index == p.Segment && v.Speed > p.Speed && mathutil.Overlap(p.X, p.Width, v.Offset, width, avoidTolerance) {
			return c.steer(v.Offset, p.X, d, v.Speed-p.Speed)
		}

		for _, j := range seg.Vehicles {
			if j == i {
				continue
			}
			other := &r.Vehicles[j]
			if v.Speed > other.Speed && mathutil.Overlap(v.Offset, width, other.Offset, other.Width(), avoidTolerance) {
				return c.steer(v.Offset, other.Offset, d, v.Speed-other.Speed)
			}
		}
	}

	switch {
	case v.Offset < -offRoadEdge:
		return offRoadNudge
	case v.Offset > offRoadEdge:
		return -offRoadNudge
	default:
		return 0
	}
}

// steer moves away from an obstacle at offset other, d segments ahead, that
// is closing at closing speed. An obstacle clearly to one side pushes toward
// the middle; otherwise the vehicle keeps to its own side of it.
func (c *Controller) steer(own, other float64, d int, closing float64) float64 {
	var dir float64
	switch {
	case other > decisiveSide:
		dir = -1
	case other < -decisiveSide:
		dir = 1
	case own > other:
		dir = 1
	default:
		dir = -1
	}
	return dir / float64(d) * closing / c.MaxSpeed
}
