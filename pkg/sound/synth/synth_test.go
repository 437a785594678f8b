package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(pcm []byte) []float32 {
	out := make([]float32, len(pcm)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(pcm[i*4:]))
	}
	return out
}

func TestEffects(t *testing.T) {
	for _, k := range []Kind{Crash, Bump, Lap, BestLap} {
		t.Run(k.String(), func(t *testing.T) {
			pcm := Generate(k, 1)
			require.NotEmpty(t, pcm)
			require.Zero(t, len(pcm)%frameBytes)
			assert.Greater(t, Duration(pcm), 0.1)
			assert.Less(t, Duration(pcm), 1.0)

			s := samples(pcm)
			peak := float32(0)
			for i := 0; i < len(s); i += 2 {
				require.Equal(t, s[i], s[i+1], "both channels carry the same sample")
				require.LessOrEqual(t, math.Abs(float64(s[i])), 1.0)
				if a := float32(math.Abs(float64(s[i]))); a > peak {
					peak = a
				}
			}
			assert.Greater(t, peak, float32(0.05), "audible")
		})
	}
}

func TestVariants(t *testing.T) {
	assert.Equal(t, Generate(Crash, 4), Generate(Crash, 4))
	assert.NotEqual(t, Generate(Crash, 4), Generate(Crash, 5))
	assert.Nil(t, Generate(Kind(42), 1))
}

func TestBestLapIsLonger(t *testing.T) {
	assert.Greater(t, Duration(Generate(BestLap, 0)), Duration(Generate(Lap, 0)))
}
