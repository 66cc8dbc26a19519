package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/term"
)

const (
	terminalWidthBackup = 80
	defaultHeight       = 12
	// columns used by the y axis labels
	labelGutter = 14
)

// RenderOptions size the terminal plot. Zero values pick defaults.
type RenderOptions struct {
	Width  int
	Height int
}

// Render writes the waveform as a text plot.
func Render(w io.Writer, wf *Waveform, opts RenderOptions) error {
	if len(wf.Values) == 0 {
		return fmt.Errorf("extract: empty waveform")
	}
	width := opts.Width
	if width <= 0 {
		width = terminalWidth(w) - labelGutter
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	graph := asciigraph.Plot(wf.Values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(4),
		asciigraph.Caption(Caption(wf)),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}

// Caption describes what the plot shows.
func Caption(wf *Waveform) string {
	return fmt.Sprintf("Transverse displacement [m] at x=%.3f (point %d/%d) vs time [s]", wf.Position(), wf.Index, wf.Points)
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= labelGutter {
		return terminalWidthBackup
	}
	return width
}
