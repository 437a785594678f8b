// Package player integrates the player car: steering, speed, the off-road
// penalty and collisions with scenery and traffic.
package player

import (
	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sprite"
)

const (
	maxDrift          = 3
	vehicleTolerance  = 0.8
	spriteCrashFactor = 5 // speed after hitting scenery is MaxSpeed/spriteCrashFactor
)

// Input is the control state sampled once per step.
type Input struct {
	Left, Right, Faster, Slower bool
}

// Steer is -1, 0 or 1.
func (in Input) Steer() int {
	switch {
	case in.Left:
		return -1
	case in.Right:
		return 1
	default:
		return 0
	}
}

// State is the player car. Position is the camera z; the car itself is
// PlayerZ further along.
type State struct {
	Position float64
	X        float64
	Speed    float64
}

// CollisionKind tells scenery hits from traffic hits.
type CollisionKind int

const (
	SpriteCollision CollisionKind = iota
	VehicleCollision
)

func (k CollisionKind) String() string {
	if k == VehicleCollision {
		return "vehicle"
	}
	return "sprite"
}

// Collision describes one crash during a step.
type Collision struct {
	Kind    CollisionKind
	Segment int
	Sprite  sprite.ID
	Vehicle int // index into road.Road.Vehicles for vehicle hits
	Speed   float64
}

// Result summarizes one step.
type Result struct {
	Segment       int     // segment the step started in
	StartPosition float64 // position before the step
	Collisions    []Collision
}

// Physics holds the tuning used to integrate the player.
type Physics struct {
	MaxSpeed     float64
	Accel        float64
	Breaking     float64
	Decel        float64
	OffRoadDecel float64
	OffRoadLimit float64
	Centrifugal  float64
	PlayerZ      float64
	Width        float64
}

// NewPhysics builds the physics constants for a configuration.
func NewPhysics(cfg config.Config, d config.Derived) *Physics {
	return &Physics{
		MaxSpeed:     d.MaxSpeed,
		Accel:        d.Accel,
		Breaking:     d.Breaking,
		Decel:        d.Decel,
		OffRoadDecel: d.OffRoadDecel,
		OffRoadLimit: d.OffRoadLimit,
		Centrifugal:  cfg.Centrifugal,
		PlayerZ:      d.PlayerZ,
		Width:        sprite.PlayerStraight.Width(),
	}
}

// Advance moves the player one step of dt seconds.
//
// Scenery is only checked while off the road and at most one sprite hit is
// taken. Traffic in the segment is then checked regardless of the scenery
// result, again stopping at the first hit.
func (ph *Physics) Advance(s *State, r *road.Road, in Input, dt float64) Result {
	length := r.Length()
	seg := r.FindSegment(s.Position + ph.PlayerZ)
	speedPercent := s.Speed / ph.MaxSpeed
	dx := dt * 2 * speedPercent

	res := Result{Segment: seg.Index, StartPosition: s.Position}

	s.Position = mathutil.Increase(s.Position, dt*s.Speed, length)

	switch in.Steer() {
	case -1:
		s.X -= dx
	case 1:
		s.X += dx
	}
	s.X -= dx * speedPercent * seg.Curve * ph.Centrifugal

	switch {
	case in.Faster:
		s.Speed = mathutil.Accelerate(s.Speed, ph.Accel, dt)
	case in.Slower:
		s.Speed = mathutil.Accelerate(s.Speed, ph.Breaking, dt)
	default:
		s.Speed = mathutil.Accelerate(s.Speed, ph.Decel, dt)
	}

	if s.X < -1 || s.X > 1 {
		if s.Speed > ph.OffRoadLimit {
			s.Speed = mathutil.Accelerate(s.Speed, ph.OffRoadDecel, dt)
		}
		for _, d := range seg.Decorations {
			w := d.Sprite.Width()
			if w <= 0 {
				continue
			}
			if mathutil.Overlap(s.X, ph.Width, footprintCenter(d.Offset, w), w, 1) {
				res.Collisions = append(res.Collisions, Collision{Kind: SpriteCollision, Segment: seg.Index, Sprite: d.Sprite, Vehicle: -1, Speed: s.Speed})
				s.Speed = ph.MaxSpeed / spriteCrashFactor
				s.Position = mathutil.Increase(seg.P1.World.Z, -ph.PlayerZ, length)
				break
			}
		}
	}

	for _, i := range seg.Vehicles {
		v := &r.Vehicles[i]
		if s.Speed <= v.Speed {
			continue
		}
		if mathutil.Overlap(s.X, ph.Width, v.Offset, v.Width(), vehicleTolerance) {
			res.Collisions = append(res.Collisions, Collision{Kind: VehicleCollision, Segment: seg.Index, Sprite: v.Sprite, Vehicle: i, Speed: s.Speed})
			s.Speed = v.Speed * (v.Speed / s.Speed)
			s.Position = mathutil.Increase(v.Z, -ph.PlayerZ, length)
			break
		}
	}

	s.X = mathutil.Limit(s.X, -maxDrift, maxDrift)
	s.Speed = mathutil.Limit(s.Speed, 0, ph.MaxSpeed)
	return res
}

// footprintCenter pushes a sprite's footprint outward by half its width so
// it sits entirely beside its anchor.
func footprintCenter(offset, width float64) float64 {
	if offset > 0 {
		return offset + width/2
	}
	return offset - width/2
}
