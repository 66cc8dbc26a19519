package series

import "math"

// Snapshot is the displacement of every point of the string at one instant.
type Snapshot []float64

// TimeSeries is an ordered run of snapshots, earliest first.
type TimeSeries []Snapshot

// Data is the content of one snapshot file.
type Data struct {
	Source    string
	Primary   TimeSeries
	Companion TimeSeries
}

// Paired reports whether the file carried a companion series.
func (d *Data) Paired() bool {
	return d.Companion != nil
}

func (ts TimeSeries) Steps() int {
	return len(ts)
}

// Points returns the snapshot length, or 0 for an empty series.
func (ts TimeSeries) Points() int {
	if len(ts) == 0 {
		return 0
	}
	return len(ts[0])
}

func (ts TimeSeries) At(i int) Snapshot {
	return ts[i]
}

// Column returns the samples at spatial index j across all time steps.
func (ts TimeSeries) Column(j int) ([]float64, error) {
	if j < 0 || j >= ts.Points() {
		return nil, &IndexError{Index: j, Points: ts.Points()}
	}
	col := make([]float64, len(ts))
	for i, s := range ts {
		col[i] = s[j]
	}
	return col, nil
}

// Bounds returns the smallest and largest sample in the series.
// An empty series yields (0, 0).
func (ts TimeSeries) Bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range ts {
		for _, v := range s {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
