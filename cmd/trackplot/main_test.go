package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/outrun/pkg/road"
)

func defaultRoad() *road.Road {
	return road.Build(road.DefaultLayout(), road.Params{SegmentLength: 250, RumbleLength: 3, PlayerZ: 1000})
}

func TestMeasure(t *testing.T) {
	r := defaultRoad()
	p := measure(r)

	require.Len(t, p.Elevation, len(r.Segments))
	require.Len(t, p.Curvature, len(r.Segments))
	assert.Equal(t, 0.0, p.Elevation[0].Y)
	assert.LessOrEqual(t, p.MinY, 0.0)
	assert.Greater(t, p.MaxY, 0.0)
	assert.Greater(t, p.TotalTurn, 0.0)
	assert.GreaterOrEqual(t, p.TotalTurn, math.Abs(p.NetTurn))

	for i, xy := range p.Curvature {
		assert.Equal(t, float64(i), xy.X)
		assert.Equal(t, r.Segments[i].Curve, xy.Y)
	}
}

func TestMeasureEmpty(t *testing.T) {
	p := measure(road.New(200, 3))
	assert.Empty(t, p.Elevation)
	assert.Zero(t, p.TotalTurn)
}

func TestPlotProfile(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "track")
	require.NoError(t, plotProfile(measure(defaultRoad()), prefix))

	for _, name := range []string{"track_elevation.png", "track_curvature.png"} {
		info, err := os.Stat(filepath.Join(filepath.Dir(prefix), name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}
}
