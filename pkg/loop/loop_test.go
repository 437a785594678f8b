package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestFeedRunsWholeSteps(t *testing.T) {
	s := NewStepper(0.25, &fakeClock{})

	var total float64
	n := s.Feed(600*time.Millisecond, func(dt float64) { total += dt })

	assert.Equal(t, 2, n)
	assert.InDelta(t, 0.5, total, 1e-12)
	assert.InDelta(t, 0.1, s.Pending(), 1e-9)

	n = s.Feed(200*time.Millisecond, func(float64) {})
	assert.Equal(t, 1, n, "leftover time carries into the next frame")
}

func TestFeedNeedsMoreThanOneStep(t *testing.T) {
	s := NewStepper(0.25, &fakeClock{})
	assert.Equal(t, 0, s.Feed(250*time.Millisecond, func(float64) {}))
	assert.Equal(t, 1, s.Feed(time.Millisecond, func(float64) {}))
}

func TestFeedClampsLongFrames(t *testing.T) {
	s := NewStepper(1.0/60, &fakeClock{})

	n := s.Feed(time.Hour, func(float64) {})
	assert.LessOrEqual(t, n, 60)
	assert.GreaterOrEqual(t, n, 59)

	assert.Equal(t, 0, s.Feed(-time.Second, func(float64) {}))
}

func TestFrameReadsClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	s := NewStepper(0.1, clock)

	assert.Equal(t, 0, s.Frame(func(float64) {}))

	clock.advance(350 * time.Millisecond)
	assert.Equal(t, 3, s.Frame(func(float64) {}))

	clock.advance(10 * time.Second)
	assert.Equal(t, 10, s.Frame(func(float64) {}))
}

func TestZeroStepNeverRuns(t *testing.T) {
	s := NewStepper(0, &fakeClock{})
	assert.Equal(t, 0, s.Feed(time.Second, func(float64) {}))
}

func TestRestartForgetsTheWait(t *testing.T) {
	clock := &fakeClock{}
	s := NewStepper(0.1, clock)
	s.Feed(50*time.Millisecond, func(float64) {})

	clock.advance(800 * time.Millisecond)
	s.Restart()
	assert.Zero(t, s.Pending())

	clock.advance(250 * time.Millisecond)
	assert.Equal(t, 2, s.Frame(func(float64) {}))
}
