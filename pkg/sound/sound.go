// Package sound plays the synthesized effects through the system audio
// device.
package sound

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/golangdaddy/outrun/pkg/player"
	"github.com/golangdaddy/outrun/pkg/sim"
	"github.com/golangdaddy/outrun/pkg/sound/synth"
)

// maxVoices limits overlapping effects.
const maxVoices = 4

// System plays effects. The zero value, or a nil *System, is silent.
type System struct {
	ctx     *oto.Context
	ready   chan struct{}
	muted   atomic.Bool
	voices  atomic.Int32
	variant atomic.Int64
	Volume  float64
}

// New opens the audio device.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	return &System{ctx: ctx, ready: ready, Volume: 0.6}, nil
}

// SetMuted silences or restores effects.
func (s *System) SetMuted(muted bool) {
	if s != nil {
		s.muted.Store(muted)
	}
}

// Muted reports whether effects are silenced.
func (s *System) Muted() bool {
	return s == nil || s.muted.Load()
}

// Play starts kind on its own goroutine and returns immediately.
func (s *System) Play(kind synth.Kind) {
	if s == nil || s.ctx == nil || s.muted.Load() {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	if s.voices.Add(1) > maxVoices {
		s.voices.Add(-1)
		return
	}
	pcm := synth.Generate(kind, s.variant.Add(1))
	go func() {
		defer s.voices.Add(-1)
		p := s.ctx.NewPlayer(bytes.NewReader(pcm))
		p.SetVolume(s.Volume)
		p.Play()
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		p.Close()
	}()
}

// Handle plays the effects for one simulation step.
func (s *System) Handle(res sim.StepResult) {
	for _, c := range res.Collisions {
		if c.Kind == player.VehicleCollision {
			s.Play(synth.Bump)
		} else {
			s.Play(synth.Crash)
		}
	}
	if res.Lap != nil {
		if res.Lap.NewBest {
			s.Play(synth.BestLap)
		} else {
			s.Play(synth.Lap)
		}
	}
}
