package extract

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/stringviz/internal/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointIndex(t *testing.T) {
	tests := []struct {
		points   int
		fraction float64
		want     int
	}{
		{10, 0.1, 1},
		{10, 0.2, 2},
		{101, 0.1, 10},
		{101, 0.2, 20},
		{9, 0.2, 1},
		{4, 0.1, 0},
		{10, 0, 0},
		{10, 0.99, 9},
	}

	for _, tt := range tests {
		got, err := PointIndex(tt.points, tt.fraction)
		require.NoError(t, err, "PointIndex(%d, %v)", tt.points, tt.fraction)
		assert.Equal(t, tt.want, got, "PointIndex(%d, %v)", tt.points, tt.fraction)
	}
}

func TestPointIndex_OutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		fraction float64
	}{
		{"whole string", 10, 1},
		{"past the end", 10, 1.5},
		{"negative", 10, -0.1},
		{"no points", 0, 0.1},
		{"nan", 10, math.NaN()},
		{"inf", 10, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PointIndex(tt.points, tt.fraction)
			require.Error(t, err)
			assert.True(t, errors.Is(err, series.ErrIndexOutOfRange))

			var ie *series.IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.points, ie.Points)
		})
	}
}

func TestExtract(t *testing.T) {
	ts := series.TimeSeries{
		{0, 9, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 8, 1, 0, 0, 0, 0, 0, 0, 0},
	}

	wf, err := Extract(ts, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 1, wf.Index)
	assert.Equal(t, []float64{9, 8}, wf.Values)
	assert.Equal(t, []float64{0, 1}, wf.Time)
	assert.InDelta(t, 1.0/9, wf.Position(), 1e-12)
}

func TestExtract_TimeAxis(t *testing.T) {
	ts := make(series.TimeSeries, 5)
	for i := range ts {
		ts[i] = series.Snapshot{float64(i), float64(-i)}
	}

	wf, err := Extract(ts, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, wf.Time)
	assert.Equal(t, []float64{0, -1, -2, -3, -4}, wf.Values)
	assert.Len(t, wf.Values, ts.Steps())
}

func TestExtract_SingleStep(t *testing.T) {
	wf, err := Extract(series.TimeSeries{{3, 4, 5}}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, wf.Time)
	assert.Equal(t, []float64{4}, wf.Values)
}

func TestExtract_Errors(t *testing.T) {
	_, err := Extract(series.TimeSeries{}, 0.1)
	assert.True(t, errors.Is(err, series.ErrEmptyInput))

	_, err = Extract(series.TimeSeries{{1, 2}}, 1)
	assert.True(t, errors.Is(err, series.ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "index 2, valid range [0, 1]")
}

func TestRender(t *testing.T) {
	wf, err := Extract(series.TimeSeries{{0, 1}, {0, 2}, {0, 3}, {0, 2}}, 0.5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, wf, RenderOptions{Width: 30, Height: 5}))

	out := buf.String()
	assert.Contains(t, out, "Transverse displacement [m]")
	assert.Contains(t, out, "point 1/2")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 5)
}

func TestRender_DefaultWidth(t *testing.T) {
	wf := &Waveform{Index: 0, Points: 2, Time: []float64{0, 1}, Values: []float64{1, -1}}
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, wf, RenderOptions{}))
	assert.NotEmpty(t, buf.String())

	assert.Error(t, Render(&buf, &Waveform{}, RenderOptions{}))
}
