package hud

import (
	"testing"

	"github.com/golangdaddy/outrun/pkg/player"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls []Field
}

func (r *recorder) SetText(f Field, _ string) {
	r.calls = append(r.calls, f)
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0.0"},
		{3.45, "3.4"},
		{59.99, "59.9"},
		{60, "1.00.0"},
		{65.3, "1.05.2"},
		{125.75, "2.05.7"},
		{-1, "0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "%v", tt.seconds)
	}
}

func TestSpeedReadout(t *testing.T) {
	assert.Equal(t, 0, SpeedReadout(0))
	assert.Equal(t, 0, SpeedReadout(249))
	assert.Equal(t, 5, SpeedReadout(250))
	assert.Equal(t, 150, SpeedReadout(15000))
}

func TestSetOnlyOnChange(t *testing.T) {
	rec := &recorder{}
	h := New(60, rec)

	h.Set(Rank, "lap 1")
	h.Set(Rank, "lap 1")
	h.Set(Rank, "lap 2")
	h.Set(Speed, "")

	assert.Equal(t, []Field{Rank, Rank, Speed}, rec.calls)
	assert.Equal(t, "lap 2", h.Text(Rank))
}

func TestUpdate(t *testing.T) {
	rec := &recorder{}
	h := New(60, rec)
	st := &sim.State{
		Player: player.State{Speed: 15000},
		Laps:   player.LapTimer{Current: 12.34, Best: 70.5, HasBest: true},
	}

	for i := 0; i < 600; i++ {
		h.Update(st, nil)
	}
	assert.Equal(t, "150", h.Text(Speed), "the readout settles on the true speed")
	assert.Equal(t, "12.3", h.Text(CurrentLap))
	assert.Equal(t, "", h.Text(LastLap))
	assert.Equal(t, "1.10.5", h.Text(BestLap))
	assert.Equal(t, "lap 1", h.Text(Rank))

	n := len(rec.calls)
	h.Update(st, nil)
	assert.Len(t, rec.calls, n, "nothing changed")

	h.Update(st, &sim.LapRecord{NewBest: true})
	assert.True(t, h.NewBest)
	h.Update(st, &sim.LapRecord{})
	assert.False(t, h.NewBest)
}

func TestSpeedIsSmoothed(t *testing.T) {
	h := New(60, nil)
	st := &sim.State{Player: player.State{Speed: 15000}}
	h.Update(st, nil)
	assert.Less(t, SpeedReadout(h.speed), 150)
	assert.Greater(t, h.speed, 0.0)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "fast_lap_time", BestLap.String())
	assert.Equal(t, "unknown", Field(99).String())
}
