package config

import "math"

// Derived holds values computed from a Config. It is rebuilt on every
// configuration change and read-only in between.
type Derived struct {
	CameraDepth  float64 // 1/tan(fov/2)
	PlayerZ      float64 // distance from the camera to the player car
	Resolution   float64 // scale relative to a 480 row display
	Step         float64 // seconds per simulation tick
	MaxSpeed     float64 // one segment per tick
	Accel        float64
	Breaking     float64
	Decel        float64
	OffRoadDecel float64
	OffRoadLimit float64
}

// Derive computes the projection and physics constants for c.
func (c Config) Derive() Derived {
	c = c.Clamp()
	depth := 1 / math.Tan(float64(c.FieldOfView)/2*math.Pi/180)
	step := 1 / float64(c.FPS)
	maxSpeed := float64(c.SegmentLength) / step
	return Derived{
		CameraDepth:  depth,
		PlayerZ:      float64(c.CameraHeight) * depth,
		Resolution:   float64(c.Height) / 480,
		Step:         step,
		MaxSpeed:     maxSpeed,
		Accel:        maxSpeed / 5,
		Breaking:     -maxSpeed / 2,
		Decel:        -maxSpeed / 5,
		OffRoadDecel: -maxSpeed / 2,
		OffRoadLimit: maxSpeed / 4,
	}
}
