// Package vehicle describes the classes of traffic on the road.
package vehicle

import "github.com/golangdaddy/outrun/pkg/sprite"

// Class is the size class of a traffic vehicle. It is fixed at placement and
// decides how fast the vehicle may be.
type Class int

const (
	Car Class = iota
	Truck
)

func (c Class) String() string {
	switch c {
	case Car:
		return "car"
	case Truck:
		return "truck"
	default:
		return "unknown"
	}
}

// SpeedRange returns the range placement draws cruising speeds from. Trucks
// share the floor with cars but have a narrower spread.
func (c Class) SpeedRange(maxSpeed float64) (min, max float64) {
	min = maxSpeed / 3
	switch c {
	case Truck:
		return min, min + maxSpeed/5
	default:
		return min, min + maxSpeed/3
	}
}

// ClassOf maps a traffic sprite to its class.
func ClassOf(id sprite.ID) Class {
	switch id {
	case sprite.Semi, sprite.Truck:
		return Truck
	default:
		return Car
	}
}
