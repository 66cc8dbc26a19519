package viz

import (
	"fmt"
	"math"
	"strings"
)

// Slider draws the time control as a horizontal track.
type Slider struct {
	Label    string
	Min, Max float64
	Width    int
}

// Knob returns the track cell the knob sits on for value v.
func (s Slider) Knob(v float64) int {
	if s.Width <= 1 || s.Max <= s.Min {
		return 0
	}
	frac := (v - s.Min) / (s.Max - s.Min)
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Round(frac * float64(s.Width-1)))
}

// Track renders the filled part, the knob and the remaining part.
func (s Slider) Track(v float64) (filled, knob, rest string) {
	w := s.Width
	if w < 1 {
		w = 1
	}
	k := s.Knob(v)
	return strings.Repeat("━", k), "●", strings.Repeat("─", w-k-1)
}

func (s Slider) Readout(v float64, index int) string {
	return fmt.Sprintf("%.2f / %.0f  (step %d)", v, s.Max, index)
}
