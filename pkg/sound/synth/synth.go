// Package synth generates the game's sound effects as interleaved stereo
// float32 little-endian PCM.
package synth

import (
	"math"
	"math/rand"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 4 * ChannelCount
)

// Kind identifies a sound effect.
type Kind int

const (
	Crash Kind = iota // hitting scenery
	Bump              // running into traffic
	Lap               // crossing the line
	BestLap           // crossing the line with a record
)

func (k Kind) String() string {
	switch k {
	case Crash:
		return "crash"
	case Bump:
		return "bump"
	case Lap:
		return "lap"
	case BestLap:
		return "best-lap"
	default:
		return "unknown"
	}
}

// Generate renders kind. variant picks between takes of the same effect so
// repeated hits do not sound identical.
func Generate(kind Kind, variant int64) []byte {
	rng := rand.New(rand.NewSource(variant))
	switch kind {
	case Crash:
		return crash(rng)
	case Bump:
		return bump(rng)
	case Lap:
		return chime([]float64{880})
	case BestLap:
		return chime([]float64{660, 880, 1320})
	default:
		return nil
	}
}

// Duration is the playing time of a rendered effect.
func Duration(pcm []byte) float64 {
	return float64(len(pcm)/frameBytes) / SampleRate
}

func frames(seconds float64) (int, []byte) {
	n := int(seconds * SampleRate)
	return n, make([]byte, n*frameBytes)
}

// crash is filtered noise over a falling thump.
func crash(rng *rand.Rand) []byte {
	n, buf := frames(0.45 + 0.1*rng.Float64())
	base := 70 + 20*rng.Float64()
	lp := 0.0
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 7)
		lp += 0.25 * (rng.Float64()*2 - 1 - lp)
		phase += 2 * math.Pi * base * (1 - 0.5*t) / SampleRate
		putStereo(buf, i, 0.6*env*lp+0.5*env*math.Sin(phase))
	}
	return buf
}

// bump is a short detuned square thud.
func bump(rng *rand.Rand) []byte {
	n, buf := frames(0.18)
	freq := 110 + 30*rng.Float64()
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		env := math.Exp(-t * 18)
		sq := math.Copysign(1, math.Sin(2*math.Pi*freq*t))
		putStereo(buf, i, 0.4*env*sq)
	}
	return buf
}

// chime plays notes one after another, each a decaying sine.
func chime(notes []float64) []byte {
	const note = 0.12
	n, buf := frames(note*float64(len(notes)) + 0.2)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := 0.0
		for k, f := range notes {
			start := note * float64(k)
			if t < start {
				continue
			}
			dt := t - start
			v += 0.3 * math.Exp(-dt*6) * math.Sin(2*math.Pi*f*dt)
		}
		putStereo(buf, i, v)
	}
	return buf
}

// putStereo writes a [-1,1] sample to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	sample = math.Max(-1, math.Min(1, sample))
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*frameBytes + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}
