package road

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/outrun/pkg/mathutil"
	"github.com/golangdaddy/outrun/pkg/sprite"
	"github.com/golangdaddy/outrun/pkg/vehicle"
)

// PlaceDecorations scatters roadside sprites. Given the same rng state it
// always produces the same scenery.
func (r *Road) PlaceDecorations(rng *rand.Rand) {
	count := len(r.Segments)

	billboards := []sprite.ID{
		sprite.Billboard01, sprite.Billboard06, sprite.Billboard07,
		sprite.Billboard09, sprite.Billboard08, sprite.Billboard02,
		sprite.Billboard03, sprite.Billboard04, sprite.Billboard05,
	}
	for i, id := range billboards {
		r.AddDecoration(20*(i+1), id, -1)
	}

	r.AddDecoration(240, sprite.Billboard07, -1.2)
	r.AddDecoration(240, sprite.Billboard06, 1.2)
	r.AddDecoration(count-25, sprite.Billboard07, -1.2)
	r.AddDecoration(count-25, sprite.Billboard06, 1.2)

	for n := 10; n < 200; n += 4 + n/100 {
		r.AddDecoration(n, sprite.PalmTree, 0.5+rng.Float64()*0.5)
		r.AddDecoration(n, sprite.PalmTree, 1+rng.Float64()*2)
	}

	for n := 250; n < 1000; n += 5 {
		r.AddDecoration(n, sprite.Column, 1.1)
		r.AddDecoration(n+mathutil.RandomInt(rng, 0, 5), sprite.Tree1, -1-rng.Float64()*2)
		r.AddDecoration(n+mathutil.RandomInt(rng, 0, 5), sprite.Tree2, -1-rng.Float64()*2)
	}

	for n := 200; n < count; n += 2 {
		id := choose(rng, sprite.Plants)
		r.AddDecoration(n, id, mathutil.RandomSign(rng)*(2+rng.Float64()*5))
	}

	for n := 1000; n < count-50; n += 50 {
		side := mathutil.RandomSign(rng)
		r.AddDecoration(n+mathutil.RandomInt(rng, 0, 50), choose(rng, sprite.Billboards), -side)
		for i := 0; i < 20; i++ {
			id := choose(rng, sprite.Plants)
			r.AddDecoration(n+mathutil.RandomInt(rng, 0, 50), id, side*(1.5+rng.Float64()))
		}
	}
}

// PlaceTraffic scatters count vehicles around the lap and returns their
// indexes. Offsets lean to one side of the road, never dead center, and the
// speed comes from the vehicle class.
func (r *Road) PlaceTraffic(count int, maxSpeed float64, rng *rand.Rand) []int {
	placed := make([]int, 0, count)
	for n := 0; n < count; n++ {
		offset := rng.Float64() * 0.8 * mathutil.RandomSign(rng)
		z := math.Floor(rng.Float64()*float64(len(r.Segments))) * r.SegmentLength
		id := choose(rng, sprite.Cars)
		class := vehicle.ClassOf(id)
		lo, hi := class.SpeedRange(maxSpeed)
		placed = append(placed, r.AddVehicle(Vehicle{
			Sprite: id,
			Class:  class,
			Offset: offset,
			Z:      z,
			Speed:  lo + rng.Float64()*(hi-lo),
		}))
	}
	return placed
}

// PlacePaceCars adds count identical fast cars running at 4/5 of max speed.
func (r *Road) PlacePaceCars(count int, maxSpeed float64, rng *rand.Rand) []int {
	placed := make([]int, 0, count)
	for n := 0; n < count; n++ {
		offset := rng.Float64() * 0.8 * mathutil.RandomSign(rng)
		z := math.Floor(rng.Float64()*float64(len(r.Segments))) * r.SegmentLength
		placed = append(placed, r.AddVehicle(Vehicle{
			Sprite: sprite.Car03,
			Class:  vehicle.Car,
			Offset: offset,
			Z:      z,
			Speed:  maxSpeed * 4 / 5,
		}))
	}
	return placed
}

// PaceCars is how many pace cars every lap carries on top of its traffic.
const PaceCars = 50

// Generate builds the lap and populates it with totalCars of traffic plus
// PaceCars pace cars.
func Generate(layout Layout, p Params, totalCars int, maxSpeed float64, rng *rand.Rand) *Road {
	r := Build(layout, p)
	r.PlaceDecorations(rng)
	r.PlaceTraffic(totalCars, maxSpeed, rng)
	r.PlacePaceCars(PaceCars, maxSpeed, rng)
	return r
}

func choose(rng *rand.Rand, ids []sprite.ID) sprite.ID {
	return ids[mathutil.RandomInt(rng, 0, len(ids)-1)]
}
