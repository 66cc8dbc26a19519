// Package extract samples one point of the string across every time step.
package extract

import (
	"math"

	"github.com/san-kum/stringviz/internal/series"
)

// Waveform is the displacement of a single point over normalized time.
type Waveform struct {
	Index    int
	Fraction float64
	Points   int
	Time     []float64
	Values   []float64
}

// Position is the point's place on the normalized [0, 1] string.
func (w *Waveform) Position() float64 {
	if w.Points <= 1 {
		return 0
	}
	return float64(w.Index) / float64(w.Points-1)
}

// PointIndex truncates points*fraction to an index and checks it against
// the snapshot length.
func PointIndex(points int, fraction float64) (int, error) {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return 0, &series.IndexError{Index: -1, Points: points}
	}
	idx := int(float64(points) * fraction)
	if fraction < 0 || idx < 0 || idx >= points {
		return 0, &series.IndexError{Index: idx, Points: points}
	}
	return idx, nil
}

// Extract builds the waveform at int(points*fraction) for every step of ts.
func Extract(ts series.TimeSeries, fraction float64) (*Waveform, error) {
	if ts.Steps() == 0 {
		return nil, series.ErrEmptyInput
	}
	idx, err := PointIndex(ts.Points(), fraction)
	if err != nil {
		return nil, err
	}
	values, err := ts.Column(idx)
	if err != nil {
		return nil, err
	}
	return &Waveform{
		Index:    idx,
		Fraction: fraction,
		Points:   ts.Points(),
		Time:     series.Linspace(0, 1, ts.Steps()),
		Values:   values,
	}, nil
}
