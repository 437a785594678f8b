// Package sim owns the race state and advances it one fixed step at a time.
package sim

import (
	"math/rand"
	"time"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/monitoring"
	"github.com/golangdaddy/outrun/pkg/player"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/traffic"
)

// Delivery is a result produced off the simulation goroutine. It is applied
// to the state between steps.
type Delivery interface {
	Deliver(s *State)
}

// LapRecord describes a completed lap.
type LapRecord struct {
	Number     int
	Time       float64
	NewBest    bool
	MaxSpeed   float64
	Collisions int
}

// StepResult reports what happened during one step.
type StepResult struct {
	Collisions []player.Collision
	Lap        *LapRecord
}

// Simulation is the single controller of a race.
type Simulation struct {
	// Inbox receives deliveries from background work. It is drained at
	// the start of every step and by Sync, both on the goroutine that
	// owns the simulation.
	Inbox chan Delivery

	layout  road.Layout
	state   *State
	physics *player.Physics
	traffic *traffic.Controller
	seed    int64
}

// New builds a race for cfg on layout. best is a stored best lap in seconds,
// zero when there is no record.
func New(cfg config.Config, layout road.Layout, best float64) *Simulation {
	s := &Simulation{
		Inbox:  make(chan Delivery, 1),
		layout: layout,
	}
	s.state = s.build(cfg.Clamp())
	s.state.Laps = *player.NewLapTimer(best)
	s.wire()
	return s
}

// State returns the current state. The pointer changes on rebuild.
func (s *Simulation) State() *State {
	return s.state
}

// Seed is the random seed the current track was populated with.
func (s *Simulation) Seed() int64 {
	return s.seed
}

func (s *Simulation) build(cfg config.Config) *State {
	d := cfg.Derive()
	s.seed = cfg.Seed
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s.seed))
	r := road.Generate(s.layout, road.Params{
		SegmentLength: float64(cfg.SegmentLength),
		RumbleLength:  cfg.RumbleLength,
		PlayerZ:       d.PlayerZ,
	}, cfg.TotalCars, d.MaxSpeed, rng)
	monitoring.Logf("built track: %d segments, %d vehicles, seed %d", len(r.Segments), len(r.Vehicles), s.seed)
	return &State{Config: cfg, Derived: d, Road: r}
}

func (s *Simulation) wire() {
	st := s.state
	s.physics = player.NewPhysics(st.Config, st.Derived)
	s.traffic = traffic.NewController(st.Derived.MaxSpeed, st.Config.DrawDistance)
}

// Reset applies a new configuration between steps. Options that shape the
// track rebuild the road and traffic; other changes only recompute the
// derived camera and physics values. The player, lap times and loaded
// sheets carry over. It reports whether the track was rebuilt.
func (s *Simulation) Reset(cfg config.Config) bool {
	cfg = cfg.Clamp()
	prev := s.state
	rebuild := prev.Config.NeedsRebuild(cfg)

	var next *State
	if rebuild {
		next = s.build(cfg)
	} else {
		cp := *prev
		cp.Config = cfg
		cp.Derived = cfg.Derive()
		next = &cp
	}
	next.Player = prev.Player
	next.Player.Position = mathutil.Increase(prev.Player.Position, 0, next.Road.Length())
	next.Player.Speed = mathutil.Limit(next.Player.Speed, 0, next.Derived.MaxSpeed)
	next.Input = prev.Input
	next.Laps = prev.Laps
	next.LapCount = prev.LapCount
	next.Parallax = prev.Parallax
	next.Sheets = prev.Sheets
	next.lapMaxSpeed = prev.lapMaxSpeed
	next.lapCollisions = prev.lapCollisions

	s.state = next
	s.wire()
	return rebuild
}

// Step advances the race by dt seconds: traffic first, then the player,
// the parallax layers and the lap timer.
func (s *Simulation) Step(dt float64, in player.Input) StepResult {
	s.drain()

	st := s.state
	st.Input = in
	seg := st.PlayerSegment()

	s.traffic.Advance(st.Road, traffic.Player{
		Segment: seg.Index,
		X:       st.Player.X,
		Width:   s.physics.Width,
		Speed:   st.Player.Speed,
	}, dt)

	res := s.physics.Advance(&st.Player, st.Road, in, dt)
	out := StepResult{Collisions: res.Collisions}

	moved := (st.Player.Position - res.StartPosition) / st.Road.SegmentLength
	st.Parallax.Sky = mathutil.Increase(st.Parallax.Sky, SkySpeed*seg.Curve*moved, 1)
	st.Parallax.Hill = mathutil.Increase(st.Parallax.Hill, HillSpeed*seg.Curve*moved, 1)
	st.Parallax.Tree = mathutil.Increase(st.Parallax.Tree, TreeSpeed*seg.Curve*moved, 1)

	st.lapCollisions += len(res.Collisions)
	if st.Player.Speed > st.lapMaxSpeed {
		st.lapMaxSpeed = st.Player.Speed
	}

	if lap, done := st.Laps.Update(res.StartPosition, st.Player.Position, st.Derived.PlayerZ, dt); done {
		st.LapCount++
		out.Lap = &LapRecord{
			Number:     st.LapCount,
			Time:       lap.Time,
			NewBest:    lap.NewBest,
			MaxSpeed:   st.lapMaxSpeed,
			Collisions: st.lapCollisions,
		}
		st.lapMaxSpeed = 0
		st.lapCollisions = 0
		if lap.NewBest {
			monitoring.Logf("new best lap %.1fs", lap.Time)
		}
	}
	return out
}

// Sync applies pending deliveries without stepping. Frontends waiting for
// the sheets call it before the first step.
func (s *Simulation) Sync() {
	s.drain()
}

func (s *Simulation) drain() {
	for {
		select {
		case d := <-s.Inbox:
			d.Deliver(s.state)
		default:
			return
		}
	}
}
