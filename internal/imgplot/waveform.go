package imgplot

import (
	"fmt"

	"github.com/san-kum/stringviz/internal/extract"
	"github.com/san-kum/stringviz/internal/viewer"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveWaveform draws the displacement of one point over time.
func SaveWaveform(path string, wf *extract.Waveform, width, height vg.Length) error {
	if len(wf.Values) == 0 {
		return fmt.Errorf("imgplot: empty waveform")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Point %d of %d (x = %.3f)", wf.Index, wf.Points, wf.Position())
	p.X.Label.Text = "Time [s]"
	p.Y.Label.Text = "Transverse displacement [m]"
	p.Add(plotter.NewGrid())

	ln, err := plotter.NewLine(xys(wf.Time, wf.Values))
	if err != nil {
		return fmt.Errorf("imgplot: waveform line: %w", err)
	}
	ln.Color = lineColors[viewer.Primary]
	ln.LineStyle.Width = vg.Points(1.5)
	p.Add(ln)

	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("imgplot: save %s: %w", path, err)
	}
	return nil
}
