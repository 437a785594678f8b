package mathutil

// Vec3 is a point in world or camera space.
type Vec3 struct {
	X, Y, Z float64
}

// Screen is a projected point: pixel position, road half-width in pixels and
// the perspective scale used to size sprites.
type Screen struct {
	X, Y, W float64
	Scale   float64
}

// Point carries one segment boundary through the projection pipeline. World is
// fixed at build time; Camera and Screen are overwritten every frame.
type Point struct {
	World  Vec3
	Camera Vec3
	Screen Screen
}

// Camera is the eye position in world space plus the projection constants.
type Camera struct {
	X, Y, Z   float64
	Depth     float64
	Width     float64
	Height    float64
	RoadWidth float64
}

// Project moves p into camera space and onto the screen. Points at or behind
// the eye have no defined projection; their screen fields are zeroed and
// false is returned.
func Project(p *Point, cam Camera) bool {
	p.Camera.X = p.World.X - cam.X
	p.Camera.Y = p.World.Y - cam.Y
	p.Camera.Z = p.World.Z - cam.Z
	if p.Camera.Z <= 0 {
		p.Screen = Screen{}
		return false
	}
	scale := cam.Depth / p.Camera.Z
	p.Screen.Scale = scale
	p.Screen.X = Round(cam.Width/2 + scale*p.Camera.X*cam.Width/2)
	p.Screen.Y = Round(cam.Height/2 - scale*p.Camera.Y*cam.Height/2)
	p.Screen.W = Round(scale * cam.RoadWidth * cam.Width / 2)
	return true
}
