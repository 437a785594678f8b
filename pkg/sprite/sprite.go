// Package sprite names every image on the sprite and background sheets and
// records where it sits.
package sprite

import "image"

// ID identifies one sprite on the sprite sheet.
type ID int

const (
	PalmTree ID = iota
	Billboard08
	Tree1
	DeadTree1
	Billboard09
	Boulder3
	Column
	Billboard01
	Billboard06
	Billboard05
	Billboard07
	Boulder2
	Tree2
	Billboard04
	DeadTree2
	Boulder1
	Bush1
	Cactus
	Bush2
	Billboard03
	Billboard02
	Stump
	Semi
	Truck
	Car03
	Car02
	Car04
	Car01
	PlayerUphillLeft
	PlayerUphillStraight
	PlayerUphillRight
	PlayerLeft
	PlayerStraight
	PlayerRight

	numSprites
)

// Frame is a sub-rectangle of a sheet in pixels.
type Frame struct {
	X, Y, W, H int
}

// Rect converts the frame to an image.Rectangle.
func (f Frame) Rect() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.W, f.Y+f.H)
}

var frames = [numSprites]Frame{
	PalmTree:             {5, 5, 215, 540},
	Billboard08:          {230, 5, 385, 265},
	Tree1:                {625, 5, 360, 360},
	DeadTree1:            {5, 555, 135, 332},
	Billboard09:          {150, 555, 328, 282},
	Boulder3:             {230, 280, 320, 220},
	Column:               {995, 5, 200, 315},
	Billboard01:          {625, 375, 300, 170},
	Billboard06:          {488, 555, 298, 190},
	Billboard05:          {5, 897, 298, 190},
	Billboard07:          {313, 897, 298, 190},
	Boulder2:             {621, 897, 298, 140},
	Tree2:                {1205, 5, 282, 295},
	Billboard04:          {1205, 310, 268, 170},
	DeadTree2:            {1205, 490, 150, 260},
	Boulder1:             {1205, 760, 168, 248},
	Bush1:                {5, 1097, 240, 155},
	Cactus:               {929, 897, 235, 118},
	Bush2:                {255, 1097, 232, 152},
	Billboard03:          {5, 1262, 230, 220},
	Billboard02:          {245, 1262, 215, 220},
	Stump:                {995, 330, 195, 140},
	Semi:                 {1365, 490, 122, 144},
	Truck:                {1365, 644, 100, 78},
	Car03:                {1383, 760, 88, 55},
	Car02:                {1383, 825, 80, 59},
	Car04:                {1383, 894, 80, 57},
	Car01:                {1205, 1018, 80, 56},
	PlayerUphillLeft:     {1383, 961, 80, 45},
	PlayerUphillStraight: {1295, 1018, 80, 45},
	PlayerUphillRight:    {1385, 1018, 80, 45},
	PlayerLeft:           {995, 480, 80, 41},
	PlayerStraight:       {1085, 480, 80, 41},
	PlayerRight:          {995, 531, 80, 41},
}

// SheetSize is the size of the sprite sheet the frames are laid out on.
var SheetSize = image.Pt(1490, 1490)

// Scale converts sprite pixels to road-width units; the player car is 0.3 of
// the road half-width.
var Scale = 0.3 * (1.0 / float64(frames[PlayerStraight].W))

// Frame returns where id sits on the sprite sheet.
func (id ID) Frame() Frame {
	if id < 0 || id >= numSprites {
		return Frame{}
	}
	return frames[id]
}

// Width is the sprite's footprint in road-width units.
func (id ID) Width() float64 {
	return float64(id.Frame().W) * Scale
}

// All lists every sprite id.
func All() []ID {
	ids := make([]ID, numSprites)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

var (
	// Billboards are placed at fixed indices and in random clusters.
	Billboards = []ID{Billboard01, Billboard02, Billboard03, Billboard04, Billboard05, Billboard06, Billboard07, Billboard08, Billboard09}
	// Plants are scattered along the roadside.
	Plants = []ID{Tree1, Tree2, DeadTree1, DeadTree2, PalmTree, Bush1, Bush2, Cactus, Stump, Boulder1, Boulder2, Boulder3}
	// Cars are the traffic sprites.
	Cars = []ID{Car01, Car02, Car03, Car04, Semi, Truck}
)

// Layer identifies a parallax strip on the background sheet.
type Layer int

const (
	Hills Layer = iota
	Sky
	Trees
)

var layers = [...]Frame{
	Hills: {5, 5, 1280, 480},
	Sky:   {5, 495, 1280, 480},
	Trees: {5, 985, 1280, 480},
}

// BackgroundSize is the size of the background sheet.
var BackgroundSize = image.Pt(1290, 1470)

// Frame returns where the layer sits on the background sheet.
func (l Layer) Frame() Frame {
	if l < 0 || int(l) >= len(layers) {
		return Frame{}
	}
	return layers[l]
}

// Layers lists the parallax strips back to front.
func Layers() []Layer {
	return []Layer{Sky, Hills, Trees}
}
