package road

import "image/color"

// Band is the paint scheme of one segment. A Band without a lane color draws
// no lane markers.
type Band struct {
	Road   color.RGBA
	Grass  color.RGBA
	Rumble color.RGBA
	Lane   color.RGBA
}

// HasLane reports whether lane markers are painted on the band.
func (b Band) HasLane() bool {
	return b.Lane.A != 0
}

var (
	Light = Band{
		Road:   color.RGBA{0x6B, 0x6B, 0x6B, 0xFF},
		Grass:  color.RGBA{0x10, 0xAA, 0x10, 0xFF},
		Rumble: color.RGBA{0x55, 0x55, 0x55, 0xFF},
		Lane:   color.RGBA{0xCC, 0xCC, 0xCC, 0xFF},
	}
	Dark = Band{
		Road:   color.RGBA{0x69, 0x69, 0x69, 0xFF},
		Grass:  color.RGBA{0x00, 0x9A, 0x00, 0xFF},
		Rumble: color.RGBA{0xBB, 0xBB, 0xBB, 0xFF},
	}
	Start = Band{
		Road:   color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Grass:  color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		Rumble: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
	Finish = Band{
		Road:   color.RGBA{0x00, 0x00, 0x00, 0xFF},
		Grass:  color.RGBA{0x00, 0x00, 0x00, 0xFF},
		Rumble: color.RGBA{0x00, 0x00, 0x00, 0xFF},
	}
)

// bandFor alternates Light and Dark every rumbleLength segments.
func bandFor(n, rumbleLength int) Band {
	if (n/rumbleLength)%2 == 1 {
		return Dark
	}
	return Light
}
