// Package loop drives a fixed-step simulation from a variable frame clock.
package loop

import "time"

// MaxFrame caps how much wall time a single frame may feed the accumulator.
// A long pause (a suspended window, a debugger) would otherwise queue up
// thousands of catch-up steps.
const MaxFrame = time.Second

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Stepper accumulates elapsed time and runs whole steps.
type Stepper struct {
	step  float64
	acc   float64
	last  time.Time
	clock Clock
}

// NewStepper creates a stepper running steps of step seconds.
func NewStepper(step float64, clock Clock) *Stepper {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Stepper{step: step, clock: clock, last: clock.Now()}
}

// Step is the fixed step length in seconds.
func (s *Stepper) Step() float64 {
	return s.step
}

// SetStep changes the step length, keeping any time already accumulated.
func (s *Stepper) SetStep(step float64) {
	s.step = step
}

// Restart drops accumulated time and counts the next frame from now, so a
// wait before the first step is not caught up.
func (s *Stepper) Restart() {
	s.acc = 0
	s.last = s.clock.Now()
}

// Frame reads the clock and runs update once per whole step elapsed since
// the previous frame. It returns the number of steps run.
func (s *Stepper) Frame(update func(dt float64)) int {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	return s.Feed(elapsed, update)
}

// Feed adds elapsed to the accumulator and runs the steps it pays for.
// Elapsed time is clamped to MaxFrame; negative time is ignored.
func (s *Stepper) Feed(elapsed time.Duration, update func(dt float64)) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrame {
		elapsed = MaxFrame
	}
	s.acc += elapsed.Seconds()
	if s.step <= 0 {
		return 0
	}
	n := 0
	for s.acc > s.step {
		s.acc -= s.step
		update(s.step)
		n++
	}
	return n
}

// Pending is the accumulated time not yet consumed by a step.
func (s *Stepper) Pending() float64 {
	return s.acc
}
