package player

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/outrun/pkg/config"
	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func setup(t *testing.T, layout road.Layout) (*Physics, *road.Road) {
	t.Helper()
	cfg := config.Default()
	d := cfg.Derive()
	r := road.Build(layout, road.Params{SegmentLength: float64(cfg.SegmentLength), RumbleLength: cfg.RumbleLength, PlayerZ: d.PlayerZ})
	return NewPhysics(cfg, d), r
}

func straight() road.Layout {
	return road.Layout{{Pattern: road.Straight, Length: road.LengthLong}}
}

// placeAt returns the camera position that puts the car at the start of
// segment n.
func placeAt(ph *Physics, r *road.Road, n int) float64 {
	return r.Segments[n].P1.World.Z - ph.PlayerZ
}

func TestSpeedIsAlwaysClamped(t *testing.T) {
	ph, r := setup(t, road.DefaultLayout())
	r.PlaceDecorations(rand.New(rand.NewSource(1)))
	r.PlaceTraffic(150, ph.MaxSpeed, rand.New(rand.NewSource(2)))

	rng := rand.New(rand.NewSource(3))
	s := &State{}
	for i := 0; i < 5000; i++ {
		in := Input{Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0, Faster: rng.Intn(2) == 0, Slower: rng.Intn(5) == 0}
		ph.Advance(s, r, in, dt)
		require.GreaterOrEqual(t, s.Speed, 0.0)
		require.LessOrEqual(t, s.Speed, ph.MaxSpeed)
		require.GreaterOrEqual(t, s.X, -3.0)
		require.LessOrEqual(t, s.X, 3.0)
		require.GreaterOrEqual(t, s.Position, 0.0)
		require.Less(t, s.Position, r.Length())
	}
}

func TestAccelerationModes(t *testing.T) {
	ph, r := setup(t, straight())

	s := &State{Speed: 6000}
	ph.Advance(s, r, Input{Faster: true}, dt)
	assert.InDelta(t, 6000+ph.Accel*dt, s.Speed, 1e-9)

	s = &State{Speed: 6000}
	ph.Advance(s, r, Input{Slower: true}, dt)
	assert.InDelta(t, 6000+ph.Breaking*dt, s.Speed, 1e-9)

	s = &State{Speed: 6000}
	ph.Advance(s, r, Input{}, dt)
	assert.InDelta(t, 6000+ph.Decel*dt, s.Speed, 1e-9)
	assert.InDelta(t, 6000*dt, s.Position, 1e-9)
}

func TestSteeringScalesWithSpeed(t *testing.T) {
	ph, r := setup(t, straight())

	s := &State{Speed: ph.MaxSpeed}
	ph.Advance(s, r, Input{Right: true, Faster: true}, dt)
	assert.InDelta(t, 2*dt, s.X, 1e-12)

	s = &State{Speed: ph.MaxSpeed / 2}
	ph.Advance(s, r, Input{Left: true}, dt)
	assert.InDelta(t, -dt, s.X, 1e-12)

	s = &State{}
	ph.Advance(s, r, Input{Left: true}, dt)
	assert.Equal(t, 0.0, s.X)
}

func TestCentrifugalDrift(t *testing.T) {
	ph, r := setup(t, road.Layout{{Pattern: road.Curve, Length: road.LengthMedium, Curve: road.CurveHard}})
	n := 60
	require.Equal(t, float64(road.CurveHard), r.Segments[n].Curve)

	s := &State{Position: placeAt(ph, r, n) + 1, Speed: ph.MaxSpeed}
	ph.Advance(s, r, Input{Faster: true}, dt)
	assert.InDelta(t, -2*dt*road.CurveHard*ph.Centrifugal, s.X, 1e-12)
}

func TestOffRoadRoundTrip(t *testing.T) {
	ph, r := setup(t, straight())

	s := &State{X: 1.5, Speed: ph.MaxSpeed}
	ph.Advance(s, r, Input{}, dt)
	assert.InDelta(t, ph.MaxSpeed+(ph.Decel+ph.OffRoadDecel)*dt, s.Speed, 1e-9)

	s = &State{X: 1.5, Speed: ph.OffRoadLimit / 2}
	ph.Advance(s, r, Input{}, dt)
	assert.InDelta(t, ph.OffRoadLimit/2+ph.Decel*dt, s.Speed, 1e-9, "no penalty below the off-road floor")

	s = &State{X: 1.5, Speed: ph.MaxSpeed}
	for s.X > 1 {
		ph.Advance(s, r, Input{Left: true, Faster: true}, dt)
	}
	before := s.Speed
	ph.Advance(s, r, Input{}, dt)
	assert.InDelta(t, before+ph.Decel*dt, s.Speed, 1e-9, "back on the road only natural deceleration applies")
}

func TestSpriteCollision(t *testing.T) {
	ph, r := setup(t, straight())
	r.AddDecoration(10, sprite.Column, 1.1)
	r.AddDecoration(10, sprite.Boulder1, 1.2)

	s := &State{Position: placeAt(ph, r, 10) + 20, X: 1.3, Speed: ph.MaxSpeed * 0.9}
	res := ph.Advance(s, r, Input{Faster: true}, dt)

	require.Len(t, res.Collisions, 1)
	assert.Equal(t, SpriteCollision, res.Collisions[0].Kind)
	assert.Equal(t, sprite.Column, res.Collisions[0].Sprite)
	assert.Equal(t, 10, res.Collisions[0].Segment)
	assert.InDelta(t, ph.MaxSpeed/5, s.Speed, 1e-9)
	assert.InDelta(t, r.Segments[10].P1.World.Z, s.Position+ph.PlayerZ, 1e-6)
}

func TestSpriteIgnoredOnRoad(t *testing.T) {
	ph, r := setup(t, straight())
	r.AddDecoration(10, sprite.Column, 0.9)

	s := &State{Position: placeAt(ph, r, 10) + 20, X: 0.9, Speed: ph.MaxSpeed / 2}
	res := ph.Advance(s, r, Input{}, dt)
	assert.Empty(t, res.Collisions)
}

func TestSpriteFootprintSitsOutsideAnchor(t *testing.T) {
	ph, r := setup(t, straight())
	r.AddDecoration(10, sprite.Column, -1.1)

	// column spans roughly [-1.85, -1.1]; a car at -2.2 is clear of it
	s := &State{Position: placeAt(ph, r, 10) + 20, X: -2.2, Speed: ph.MaxSpeed / 2}
	assert.Empty(t, ph.Advance(s, r, Input{}, dt).Collisions)

	s = &State{Position: placeAt(ph, r, 10) + 20, X: -1.5, Speed: ph.MaxSpeed / 2}
	assert.Len(t, ph.Advance(s, r, Input{}, dt).Collisions, 1)
}

func TestVehicleCollision(t *testing.T) {
	tests := []struct {
		name      string
		carSpeed  float64
		carOffset float64
		wantCrash bool
	}{
		{"slower car dead ahead", 3000, 0, true},
		{"faster car is never hit", 14000, 0, false},
		{"slower car in another lane", 3000, 0.7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph, r := setup(t, straight())
			carZ := r.Segments[10].P1.World.Z + 100
			i := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: tt.carOffset, Z: carZ, Speed: tt.carSpeed})

			speed := ph.MaxSpeed * 0.8
			s := &State{Position: placeAt(ph, r, 10) + 10, Speed: speed}
			res := ph.Advance(s, r, Input{Faster: true}, dt)

			if !tt.wantCrash {
				assert.Empty(t, res.Collisions)
				return
			}
			require.Len(t, res.Collisions, 1)
			assert.Equal(t, VehicleCollision, res.Collisions[0].Kind)
			assert.Equal(t, i, res.Collisions[0].Vehicle)
			after := speed + ph.Accel*dt
			assert.InDelta(t, tt.carSpeed*tt.carSpeed/after, s.Speed, 1e-9)
			assert.InDelta(t, carZ, s.Position+ph.PlayerZ, 1e-6)
		})
	}
}

func TestSpriteAndVehicleInSameStep(t *testing.T) {
	ph, r := setup(t, straight())
	r.AddDecoration(10, sprite.Column, 1.1)
	carZ := r.Segments[10].P1.World.Z + 150
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 1.3, Z: carZ, Speed: 1000})

	s := &State{Position: placeAt(ph, r, 10) + 20, X: 1.3, Speed: ph.MaxSpeed * 0.9}
	res := ph.Advance(s, r, Input{}, dt)

	require.Len(t, res.Collisions, 2)
	assert.Equal(t, SpriteCollision, res.Collisions[0].Kind)
	assert.Equal(t, VehicleCollision, res.Collisions[1].Kind)
	assert.InDelta(t, 1000*1000/(ph.MaxSpeed/5), s.Speed, 1e-9)
	assert.InDelta(t, carZ, s.Position+ph.PlayerZ, 1e-6)
}

func TestLapTimer(t *testing.T) {
	const playerZ = 100.0

	lt := NewLapTimer(0)
	assert.False(t, lt.HasBest)

	_, done := lt.Update(0, 50, playerZ, 1)
	assert.False(t, done)
	assert.Equal(t, 0.0, lt.Current, "no time before the start line")

	lt.Update(90, 150, playerZ, 1)
	lt.Update(150, 900, playerZ, 1)
	assert.Equal(t, 2.0, lt.Current)

	_, done = lt.Update(900, 50, playerZ, 1)
	assert.False(t, done, "wrapping short of the line does not finish a lap")

	lap, done := lt.Update(50, 120, playerZ, 1)
	require.True(t, done)
	assert.Equal(t, Lap{Time: 2, NewBest: true}, lap)
	assert.Equal(t, 0.0, lt.Current)
	assert.Equal(t, 2.0, lt.Best)

	lt.Update(120, 500, playerZ, 2)
	lap, done = lt.Update(50, 150, playerZ, 1)
	require.True(t, done)
	assert.True(t, lap.NewBest, "a tie replaces the record")

	lt.Update(150, 500, playerZ, 3)
	lap, _ = lt.Update(50, 150, playerZ, 1)
	assert.False(t, lap.NewBest)
	assert.Equal(t, 3.0, lt.Last)
	assert.Equal(t, 2.0, lt.Best)
}

func TestLapTimerStoredBest(t *testing.T) {
	lt := NewLapTimer(90)
	require.True(t, lt.HasBest)

	lt.Current = 120
	lap, done := lt.Update(50, 150, 100, 1)
	require.True(t, done)
	assert.False(t, lap.NewBest)
	assert.Equal(t, 90.0, lt.Best)
}
