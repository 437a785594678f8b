package traffic

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/outrun/pkg/road"
	"github.com/golangdaddy/outrun/pkg/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	segLen   = 200.0
	maxSpeed = 12000.0
)

func newTrack(t *testing.T) *road.Road {
	t.Helper()
	return road.Build(road.Layout{{Pattern: road.Straight, Length: road.LengthLong}}, road.Params{SegmentLength: segLen, RumbleLength: 3})
}

func at(segment int) float64 {
	return float64(segment)*segLen + segLen/2
}

// farPlayer sits behind every test vehicle and out of their way.
var farPlayer = Player{Segment: 200, X: 0, Width: sprite.PlayerStraight.Width(), Speed: 0}

func TestAvoidSlowerVehicle(t *testing.T) {
	tests := []struct {
		name        string
		own, other  float64
		gap         int
		wantSign    float64
	}{
		{"keeps right of a centered car", 0.1, 0, 2, 1},
		{"keeps left of a centered car", -0.1, 0, 2, -1},
		{"equal offsets go left", 0, 0, 3, -1},
		{"car decisively right pushes left", 0.6, 0.6, 1, -1},
		{"car decisively left pushes right", -0.6, -0.6, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTrack(t)
			c := NewController(maxSpeed, 300)
			me := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: tt.own, Z: at(10), Speed: 6000})
			r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: tt.other, Z: at(10 + tt.gap), Speed: 3000})

			got := c.AvoidanceOffset(r, me, farPlayer)
			want := tt.wantSign / float64(tt.gap) * 3000 / maxSpeed
			assert.InDelta(t, want, got, 1e-12)

			again := c.AvoidanceOffset(r, me, farPlayer)
			assert.Equal(t, got, again, "avoidance must not depend on hidden state")
		})
	}
}

func TestAvoidanceIgnoresFasterAndDistantTraffic(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 300)
	me := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Z: at(10), Speed: 3000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Z: at(12), Speed: 6000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Z: at(30), Speed: 100})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: 0.7, Z: at(11), Speed: 100})

	assert.Equal(t, 0.0, c.AvoidanceOffset(r, me, farPlayer))
}

func TestClosestConflictWins(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 300)
	me := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 0, Z: at(10), Speed: 9000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: 0.2, Z: at(15), Speed: 1000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: -0.2, Z: at(13), Speed: 6000})

	// the car three segments ahead is on our left, so we go right
	assert.InDelta(t, 1.0/3*3000/maxSpeed, c.AvoidanceOffset(r, me, farPlayer), 1e-12)
}

func TestPlayerCheckedBeforeVehiclesInSameSegment(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 300)
	me := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 0, Z: at(10), Speed: 9000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: 0, Z: at(12), Speed: 1000})
	p := Player{Segment: 12, X: 0.1, Width: sprite.PlayerStraight.Width(), Speed: 4000}

	// the player's speed sets the magnitude, and the player is to our right
	assert.InDelta(t, -1.0/2*5000/maxSpeed, c.AvoidanceOffset(r, me, p), 1e-12)

	p.Speed = 9500
	assert.InDelta(t, -1.0/2*8000/maxSpeed, c.AvoidanceOffset(r, me, p), 1e-12, "a faster player is ignored")
}

func TestOutOfSightVehiclesDoNotSteer(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 100)
	me := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 1.5, Z: at(250), Speed: 9000})
	r.AddVehicle(road.Vehicle{Sprite: sprite.Car02, Offset: 1.5, Z: at(251), Speed: 1000})

	assert.Equal(t, 0.0, c.AvoidanceOffset(r, me, Player{Segment: 0}))
}

func TestOffRoadNudge(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 300)
	right := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 1.5, Z: at(10), Speed: 3000})
	left := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: -0.95, Z: at(50), Speed: 3000})
	on := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Offset: 0.5, Z: at(90), Speed: 3000})

	assert.Equal(t, -0.1, c.AvoidanceOffset(r, right, farPlayer))
	assert.Equal(t, 0.1, c.AvoidanceOffset(r, left, farPlayer))
	assert.Equal(t, 0.0, c.AvoidanceOffset(r, on, farPlayer))
}

func TestAdvanceKeepsMembership(t *testing.T) {
	r := newTrack(t)
	r.PlaceTraffic(80, maxSpeed, rand.New(rand.NewSource(5)))
	c := NewController(maxSpeed, 300)
	p := Player{Segment: 0, Width: sprite.PlayerStraight.Width()}

	for step := 0; step < 600; step++ {
		c.Advance(r, p, 1.0/60)
	}
	require.NoError(t, r.CheckMembership())
	for _, v := range r.Vehicles {
		assert.GreaterOrEqual(t, v.Z, 0.0)
		assert.Less(t, v.Z, r.Length())
	}
}

func TestAdvanceMovesAndWraps(t *testing.T) {
	r := newTrack(t)
	c := NewController(maxSpeed, 300)
	i := r.AddVehicle(road.Vehicle{Sprite: sprite.Car01, Z: r.Length() - 50, Speed: 6000})

	c.Advance(r, farPlayer, 1.0/60)
	assert.InDelta(t, 50, r.Vehicles[i].Z, 1e-9)
	assert.InDelta(t, 0.25, r.Vehicles[i].Percent, 1e-9)
	assert.Equal(t, []int{i}, r.Segments[0].Vehicles)
}
