// Package imgplot draws string profiles and waveforms into image files with
// gonum/plot, for runs without a terminal.
package imgplot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/san-kum/stringviz/internal/viewer"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var yLabels = map[viewer.PlotID]string{
	viewer.Primary:   "Displacement [m]",
	viewer.Companion: "Velocity [m/s]",
}

var lineColors = map[viewer.PlotID]color.Color{
	viewer.Primary:   color.RGBA{R: 31, G: 119, B: 180, A: 255},
	viewer.Companion: color.RGBA{R: 255, G: 127, B: 14, A: 255},
}

type line struct {
	x, y   []float64
	lo, hi float64
}

// Figure is a viewer.Surface that keeps each plot in memory until Save.
// Like the terminal figure, a plot keeps its y range until Rescale.
type Figure struct {
	Width, Height vg.Length
	Title         string

	lines   map[viewer.PlotID]*line
	order   []viewer.PlotID
	redraws int
}

func NewFigure(title string) *Figure {
	return &Figure{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  title,
		lines:  make(map[viewer.PlotID]*line),
	}
}

func (f *Figure) Plot(id viewer.PlotID, x, y []float64) {
	if _, ok := f.lines[id]; !ok {
		f.order = append(f.order, id)
	}
	l := &line{x: x, y: y}
	l.lo, l.hi = viewer.AutoBounds(y)
	f.lines[id] = l
}

func (f *Figure) SetYData(id viewer.PlotID, y []float64) {
	if l, ok := f.lines[id]; ok {
		l.y = y
	}
}

func (f *Figure) Rescale(id viewer.PlotID) {
	if l, ok := f.lines[id]; ok {
		l.lo, l.hi = viewer.AutoBounds(l.y)
	}
}

func (f *Figure) Redraw() { f.redraws++ }

// Redraws counts the redraw requests received so far.
func (f *Figure) Redraws() int { return f.redraws }

// Save writes one image per plot. The primary plot goes to path, the
// companion to path with a "-companion" suffix before the extension.
// The format follows the extension (png, svg, pdf, ...).
func (f *Figure) Save(path string) ([]string, error) {
	if len(f.order) == 0 {
		return nil, fmt.Errorf("imgplot: nothing plotted")
	}
	written := make([]string, 0, len(f.order))
	for _, id := range f.order {
		out := path
		if id != viewer.Primary {
			out = withSuffix(path, "-"+id.String())
		}
		p, err := f.build(id)
		if err != nil {
			return written, err
		}
		if err := p.Save(f.Width, f.Height, out); err != nil {
			return written, fmt.Errorf("imgplot: save %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}

func (f *Figure) build(id viewer.PlotID) (*plot.Plot, error) {
	l := f.lines[id]

	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = "Position [m]"
	p.Y.Label.Text = yLabels[id]
	p.Add(plotter.NewGrid())

	ln, err := plotter.NewLine(xys(l.x, l.y))
	if err != nil {
		return nil, fmt.Errorf("imgplot: %s line: %w", id, err)
	}
	ln.Color = lineColors[id]
	ln.LineStyle.Width = vg.Points(2)
	p.Add(ln)

	// fixed after Add, which would otherwise widen them to the data
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = l.lo, l.hi
	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}
