// Package hud keeps the heads-up display text: speed, lap times and the lap
// counter. Text is pushed to a Sink only when it changes.
package hud

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/golangdaddy/outrun/pkg/sim"
)

// Field names one piece of HUD text.
type Field int

const (
	Speed Field = iota
	CurrentLap
	LastLap
	BestLap
	Rank

	numFields
)

func (f Field) String() string {
	switch f {
	case Speed:
		return "speed"
	case CurrentLap:
		return "current_lap_time"
	case LastLap:
		return "last_lap_time"
	case BestLap:
		return "fast_lap_time"
	case Rank:
		return "rank"
	default:
		return "unknown"
	}
}

// Sink displays HUD text.
type Sink interface {
	SetText(f Field, text string)
}

// HUD tracks what is on screen.
type HUD struct {
	sink  Sink
	text  [numFields]string
	shown [numFields]bool

	spring   harmonica.Spring
	speed    float64
	speedVel float64

	// NewBest is set from a record lap until the next lap completes.
	NewBest bool
}

// New creates a HUD updated fps times a second. sink may be nil.
func New(fps int, sink Sink) *HUD {
	if fps <= 0 {
		fps = 60
	}
	return &HUD{
		sink:   sink,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Text returns the current text of f.
func (h *HUD) Text(f Field) string {
	return h.text[f]
}

// Set updates f, notifying the sink only if the text changed.
func (h *HUD) Set(f Field, text string) {
	if h.shown[f] && h.text[f] == text {
		return
	}
	h.text[f] = text
	h.shown[f] = true
	if h.sink != nil {
		h.sink.SetText(f, text)
	}
}

// Update refreshes every field from the race state. lap is the lap
// completed this frame, if any.
func (h *HUD) Update(st *sim.State, lap *sim.LapRecord) {
	h.speed, h.speedVel = h.spring.Update(h.speed, h.speedVel, st.Player.Speed)
	if h.speed < 0 {
		h.speed = 0
	}
	h.Set(Speed, fmt.Sprint(SpeedReadout(h.speed)))
	h.Set(CurrentLap, FormatTime(st.Laps.Current))
	if st.Laps.HasLast {
		h.Set(LastLap, FormatTime(st.Laps.Last))
	}
	if st.Laps.HasBest {
		h.Set(BestLap, FormatTime(st.Laps.Best))
	}
	h.Set(Rank, fmt.Sprintf("lap %d", st.LapCount+1))
	if lap != nil {
		h.NewBest = lap.NewBest
	}
}

// SpeedReadout converts a world speed to the displayed figure, a multiple
// of five.
func SpeedReadout(speed float64) int {
	return 5 * int(math.Round(speed/500))
}

// FormatTime renders seconds as m.ss.t, or s.t under a minute. Tenths are
// truncated.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := math.Floor(seconds / 60)
	secs := math.Floor(seconds - minutes*60)
	tenths := math.Floor(10 * (seconds - math.Floor(seconds)))
	if minutes > 0 {
		return fmt.Sprintf("%d.%02d.%d", int(minutes), int(secs), int(tenths))
	}
	return fmt.Sprintf("%d.%d", int(secs), int(tenths))
}
