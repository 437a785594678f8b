package player

// LapTimer tracks the current, last and best lap times in seconds.
type LapTimer struct {
	Current float64
	Last    float64
	Best    float64
	HasLast bool
	HasBest bool
}

// Lap is a completed lap.
type Lap struct {
	Time    float64
	NewBest bool
}

// NewLapTimer starts a timer with an optional stored best time. A best of
// zero or less means there is no record.
func NewLapTimer(best float64) *LapTimer {
	t := &LapTimer{}
	if best > 0 {
		t.Best = best
		t.HasBest = true
	}
	return t
}

// Update advances the timer after a step that moved the camera from start to
// position. The start line is at playerZ: crossing it with a lap under way
// completes the lap, otherwise time accumulates while the car is past it.
// A lap equal to the best time also counts as a new best.
func (t *LapTimer) Update(start, position, playerZ, dt float64) (Lap, bool) {
	if position <= playerZ {
		return Lap{}, false
	}
	if t.Current > 0 && start < playerZ {
		lap := Lap{Time: t.Current}
		t.Last = t.Current
		t.HasLast = true
		t.Current = 0
		if !t.HasBest || lap.Time <= t.Best {
			t.Best = lap.Time
			t.HasBest = true
			lap.NewBest = true
		}
		return lap, true
	}
	t.Current += dt
	return Lap{}, false
}
