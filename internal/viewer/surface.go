package viewer

import "math"

// PlotID selects one of the two profile plots.
type PlotID int

const (
	Primary PlotID = iota
	Companion
)

func (id PlotID) String() string {
	switch id {
	case Primary:
		return "primary"
	case Companion:
		return "companion"
	}
	return "unknown"
}

// Surface is the drawing backend a Session renders into.
type Surface interface {
	// Plot creates the line for id and fixes its axis bounds from y.
	Plot(id PlotID, x, y []float64)
	// SetYData replaces the y values of an existing line.
	SetYData(id PlotID, y []float64)
	// Rescale recomputes the axis bounds of id from its current data.
	Rescale(id PlotID)
	// Redraw marks the surface dirty.
	Redraw()
}

const boundsMargin = 0.05

// AutoBounds returns y axis limits that fit y with a 5% margin on each
// side. Flat data gets a unit-wide window around its value.
func AutoBounds(y []float64) (float64, float64) {
	if len(y) == 0 {
		return -0.5, 0.5
	}
	lo, hi := y[0], y[0]
	for _, v := range y[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		return lo - 0.5, hi + 0.5
	}
	// halved so spans near ±MaxFloat64 stay finite
	margin := 2 * boundsMargin * (hi/2 - lo/2)
	return math.Max(lo-margin, -math.MaxFloat64), math.Min(hi+margin, math.MaxFloat64)
}
