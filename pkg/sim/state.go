package sim

import (
	"image"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/player"
	"github.com/golangdaddy/outrun/pkg/road"
)

// Parallax layer rates, in offset per unit of curvature per segment driven.
const (
	SkySpeed  = 0.001
	HillSpeed = 0.002
	TreeSpeed = 0.003
)

// Parallax holds the horizontal scroll of each background layer in [0,1).
type Parallax struct {
	Sky  float64
	Hill float64
	Tree float64
}

// Sheets are the decoded images the renderer draws from.
type Sheets struct {
	Sprites    image.Image
	Background image.Image
}

// State is everything the renderer and HUD read. It is replaced wholesale
// on rebuild and mutated only inside Step.
type State struct {
	Config  config.Config
	Derived config.Derived
	Road    *road.Road
	Player  player.State
	Input   player.Input
	Laps    player.LapTimer
	// LapCount is the number of completed laps.
	LapCount int
	Parallax Parallax
	Sheets   Sheets

	lapMaxSpeed   float64
	lapCollisions int
}

// Ready reports whether both sheets have arrived. Nothing should be
// rendered before.
func (s *State) Ready() bool {
	return s.Sheets.Sprites != nil && s.Sheets.Background != nil
}

// PlayerSegment is the segment under the player car.
func (s *State) PlayerSegment() *road.Segment {
	return s.Road.FindSegment(s.Player.Position + s.Derived.PlayerZ)
}

// BaseSegment is the segment under the camera.
func (s *State) BaseSegment() *road.Segment {
	return s.Road.FindSegment(s.Player.Position)
}
