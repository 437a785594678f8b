package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/outrun/pkg/player"
)

// readInput samples the driving keys. Arrows and WASD both work.
func readInput() player.Input {
	return player.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Faster: ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Slower: ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// tweak binds a key to a change of one option during the race.
type tweak struct {
	key    ebiten.Key
	option string
	delta  int
}

var tweaks = []tweak{
	{ebiten.KeyBracketLeft, "lanes", -1},
	{ebiten.KeyBracketRight, "lanes", 1},
	{ebiten.KeyMinus, "drawDistance", -100},
	{ebiten.KeyEqual, "drawDistance", 100},
	{ebiten.KeyComma, "fieldOfView", -10},
	{ebiten.KeyPeriod, "fieldOfView", 10},
}
