package main

import (
	"sync"
	"time"

	"github.com/golangdaddy/outrun/pkg/player"
)

// holdTime is how long a key counts as held after its last press event.
// Terminals report key repeats but rarely releases.
const holdTime = 150 * time.Millisecond

type control int

const (
	controlLeft control = iota
	controlRight
	controlFaster
	controlSlower
	numControls
)

// keys turns press events into held controls that decay.
type keys struct {
	mu      sync.Mutex
	pressed [numControls]time.Time
}

func (k *keys) press(c control, at time.Time) {
	k.mu.Lock()
	k.pressed[c] = at
	k.mu.Unlock()
}

func (k *keys) release(c control) {
	k.mu.Lock()
	k.pressed[c] = time.Time{}
	k.mu.Unlock()
}

// input reports the controls held at now.
func (k *keys) input(now time.Time) player.Input {
	k.mu.Lock()
	defer k.mu.Unlock()
	held := func(c control) bool {
		t := k.pressed[c]
		return !t.IsZero() && now.Sub(t) < holdTime
	}
	return player.Input{
		Left:   held(controlLeft),
		Right:  held(controlRight),
		Faster: held(controlFaster),
		Slower: held(controlSlower),
	}
}
