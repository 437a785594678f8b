// Package config holds the race tunables. Every option has a default and a
// range; out-of-range or malformed values are clamped or replaced, never
// rejected.
package config

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/golangdaddy/outrun/pkg/monitoring"
)

// Config enumerates every recognized option.
type Config struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Lanes         int     `json:"lanes"`
	RoadWidth     int     `json:"road_width"` // half the road width, the road spans -RoadWidth..+RoadWidth
	CameraHeight  int     `json:"camera_height"`
	DrawDistance  int     `json:"draw_distance"` // segments drawn per frame
	FogDensity    int     `json:"fog_density"`
	FieldOfView   int     `json:"field_of_view"` // degrees
	SegmentLength int     `json:"segment_length"`
	RumbleLength  int     `json:"rumble_length"` // segments per color band
	TotalCars     int     `json:"total_cars"`
	FPS           int     `json:"fps"`
	Centrifugal   float64 `json:"centrifugal"`
	Seed          int64   `json:"seed"` // 0 seeds from the clock
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Width:         1280,
		Height:        960,
		Lanes:         3,
		RoadWidth:     2000,
		CameraHeight:  1250,
		DrawDistance:  300,
		FogDensity:    5,
		FieldOfView:   100,
		SegmentLength: 250,
		RumbleLength:  3,
		TotalCars:     200,
		FPS:           60,
		Centrifugal:   0.3,
	}
}

// Option describes one integer tunable exposed on the flat option surface.
type Option struct {
	Name string
	Min  int
	Max  int
	// Rebuild is set when a change to the option invalidates the track.
	Rebuild bool
	field   func(*Config) *int
}

// Get returns the option's value in c.
func (o Option) Get(c Config) int {
	return *o.field(&c)
}

// Set stores v, clamped to the option's range, into c.
func (o Option) Set(c *Config, v int) {
	*o.field(c) = clampInt(v, o.Min, o.Max)
}

var options = []Option{
	{Name: "width", Min: 320, Max: 3840, field: func(c *Config) *int { return &c.Width }},
	{Name: "height", Min: 240, Max: 2160, field: func(c *Config) *int { return &c.Height }},
	{Name: "lanes", Min: 1, Max: 4, Rebuild: true, field: func(c *Config) *int { return &c.Lanes }},
	{Name: "roadWidth", Min: 500, Max: 3000, Rebuild: true, field: func(c *Config) *int { return &c.RoadWidth }},
	{Name: "cameraHeight", Min: 500, Max: 5000, field: func(c *Config) *int { return &c.CameraHeight }},
	{Name: "drawDistance", Min: 100, Max: 500, Rebuild: true, field: func(c *Config) *int { return &c.DrawDistance }},
	{Name: "fogDensity", Min: 0, Max: 50, Rebuild: true, field: func(c *Config) *int { return &c.FogDensity }},
	{Name: "fieldOfView", Min: 80, Max: 140, field: func(c *Config) *int { return &c.FieldOfView }},
	{Name: "segmentLength", Min: 100, Max: 500, Rebuild: true, field: func(c *Config) *int { return &c.SegmentLength }},
	{Name: "rumbleLength", Min: 2, Max: 10, Rebuild: true, field: func(c *Config) *int { return &c.RumbleLength }},
	{Name: "totalCars", Min: 0, Max: 500, Rebuild: true, field: func(c *Config) *int { return &c.TotalCars }},
	{Name: "fps", Min: 30, Max: 240, Rebuild: true, field: func(c *Config) *int { return &c.FPS }},
}

// Options lists the flat option surface.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Lookup finds an option by name, ignoring case.
func Lookup(name string) (Option, bool) {
	for _, o := range options {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return Option{}, false
}

// Clamp returns a copy of c with every option inside its range.
func (c Config) Clamp() Config {
	for _, o := range options {
		o.Set(&c, o.Get(c))
	}
	if math.IsNaN(c.Centrifugal) || c.Centrifugal < 0 {
		c.Centrifugal = 0
	}
	if c.Centrifugal > 2 {
		c.Centrifugal = 2
	}
	return c
}

// NeedsRebuild reports whether moving from c to next requires building the
// track again. Camera-only changes (field of view, camera height, viewport)
// only recompute the derived projection values.
func (c Config) NeedsRebuild(next Config) bool {
	for _, o := range options {
		if o.Rebuild && o.Get(c) != o.Get(next) {
			return true
		}
	}
	return c.Seed != next.Seed
}

// Nudge adds delta to the named option and clamps it. It returns false if
// the option does not exist or is already at the end of its range.
func (c Config) Nudge(name string, delta int) (Config, bool) {
	o, ok := Lookup(name)
	if !ok {
		return c, false
	}
	next := c
	o.Set(&next, o.Get(c)+delta)
	return next, o.Get(next) != o.Get(c)
}

// ParseOptions applies string values from a flat name/value set on top of
// base. Values that do not parse keep the base value; everything is clamped.
func ParseOptions(values map[string]string, base Config) Config {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := base
	for _, name := range names {
		raw := values[name]
		if strings.EqualFold(name, "centrifugal") {
			cfg.Centrifugal = toFloat(raw, base.Centrifugal)
			continue
		}
		if strings.EqualFold(name, "seed") {
			if v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
				cfg.Seed = v
			}
			continue
		}
		o, ok := Lookup(name)
		if !ok {
			monitoring.Logf("config: ignoring unknown option %q", name)
			continue
		}
		o.Set(&cfg, toInt(raw, o.Get(base)))
	}
	return cfg.Clamp()
}

// toInt parses the leading integer of s, falling back to def.
func toInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return def
}

func toFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
