package viz

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stringviz/internal/viewer"
)

var captions = map[viewer.PlotID]string{
	viewer.Primary:   "Position [m]",
	viewer.Companion: "Velocity [m/s]",
}

type axes struct {
	x, y   []float64
	lo, hi float64
}

// Figure is a terminal Surface drawn with asciigraph. Plots keep the y
// bounds they were given until Rescale is called; values outside the
// bounds are clipped so a fixed axis stays fixed.
type Figure struct {
	axes  map[viewer.PlotID]*axes
	order []viewer.PlotID
	dirty bool
}

func NewFigure() *Figure {
	return &Figure{axes: make(map[viewer.PlotID]*axes)}
}

func (f *Figure) Plot(id viewer.PlotID, x, y []float64) {
	if _, ok := f.axes[id]; !ok {
		f.order = append(f.order, id)
	}
	a := &axes{x: x, y: y}
	a.lo, a.hi = viewer.AutoBounds(y)
	f.axes[id] = a
	f.dirty = true
}

func (f *Figure) SetYData(id viewer.PlotID, y []float64) {
	if a, ok := f.axes[id]; ok {
		a.y = y
	}
}

func (f *Figure) Rescale(id viewer.PlotID) {
	if a, ok := f.axes[id]; ok {
		a.lo, a.hi = viewer.AutoBounds(a.y)
	}
}

func (f *Figure) Redraw() {
	f.dirty = true
}

// TakeDirty reports whether a redraw was requested since the last call.
func (f *Figure) TakeDirty() bool {
	d := f.dirty
	f.dirty = false
	return d
}

// Bounds returns the y axis limits of a plot.
func (f *Figure) Bounds(id viewer.PlotID) (float64, float64, bool) {
	a, ok := f.axes[id]
	if !ok {
		return 0, 0, false
	}
	return a.lo, a.hi, true
}

func (f *Figure) YData(id viewer.PlotID) []float64 {
	if a, ok := f.axes[id]; ok {
		return a.y
	}
	return nil
}

// Render draws every plot, stacked in creation order.
func (f *Figure) Render(width, height int) string {
	return strings.Join(f.Charts(width, height), "\n\n")
}

// Charts draws each plot separately. A zero width keeps one column per sample.
func (f *Figure) Charts(width, height int) []string {
	charts := make([]string, 0, len(f.order))
	for _, id := range f.order {
		a := f.axes[id]
		if len(a.y) == 0 {
			continue
		}
		opts := []asciigraph.Option{
			asciigraph.Height(height),
			asciigraph.LowerBound(a.lo),
			asciigraph.UpperBound(a.hi),
			asciigraph.Precision(labelPrecision(a.lo, a.hi)),
			asciigraph.Caption(captions[id]),
		}
		if width > 0 {
			opts = append(opts, asciigraph.Width(width))
		}
		charts = append(charts, asciigraph.Plot(clip(a.y, a.lo, a.hi), opts...))
	}
	return charts
}

// labelPrecision keeps about three significant digits across the axis
// span, so mm-scale displacements do not print as 0.000.
func labelPrecision(lo, hi float64) uint {
	span := hi - lo
	if !(span > 0) || math.IsInf(span, 0) {
		return 3
	}
	p := int(math.Ceil(-math.Log10(span))) + 2
	return uint(max(0, min(p, 12)))
}

func clip(y []float64, lo, hi float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		switch {
		case v < lo:
			out[i] = lo
		case v > hi:
			out[i] = hi
		default:
			out[i] = v
		}
	}
	return out
}
