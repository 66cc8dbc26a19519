package viewer

import (
	"errors"
	"math"

	"github.com/san-kum/stringviz/internal/series"
)

// ErrCompanionShape indicates a companion series that does not line up with the primary one.
var ErrCompanionShape = errors.New("viewer: companion series shape differs from primary")

// Session binds the time control to a loaded file and a surface.
// It has a single state, the current index, and a single transition, SetValue.
type Session struct {
	primary   series.TimeSeries
	companion series.TimeSeries
	surface   Surface
	index     int
	value     float64
}

// NewSession validates d and draws its first snapshot on s.
func NewSession(d *series.Data, s Surface) (*Session, error) {
	if d == nil || d.Primary.Steps() == 0 {
		return nil, series.ErrEmptyInput
	}
	if d.Paired() {
		if d.Companion.Steps() != d.Primary.Steps() || d.Companion.Points() != d.Primary.Points() {
			return nil, ErrCompanionShape
		}
	}

	sess := &Session{
		primary:   d.Primary,
		companion: d.Companion,
		surface:   s,
	}
	x := series.Linspace(0, 1, d.Primary.Points())
	s.Plot(Primary, x, d.Primary.At(0))
	if sess.Paired() {
		s.Plot(Companion, x, d.Companion.At(0))
	}
	return sess, nil
}

func (s *Session) Min() float64 { return 0 }

func (s *Session) Max() float64 { return float64(s.primary.Steps() - 1) }

func (s *Session) Steps() int { return s.primary.Steps() }

func (s *Session) Paired() bool { return s.companion != nil }

// Index is the time step currently on display.
func (s *Session) Index() int { return s.index }

// Value is the last control value, after clamping.
func (s *Session) Value() float64 { return s.value }

// Current returns the snapshots on display. companion is nil when unpaired.
func (s *Session) Current() (primary, companion series.Snapshot) {
	primary = s.primary.At(s.index)
	if s.Paired() {
		companion = s.companion.At(s.index)
	}
	return primary, companion
}

// SetValue moves the control to v and redraws. v is clamped to [Min, Max]
// and floored to a time step. Only the companion axis is rescaled; the
// primary axis keeps the bounds of the first snapshot.
func (s *Session) SetValue(v float64) int {
	if s.surface == nil || math.IsNaN(v) {
		return s.index
	}
	v = math.Max(s.Min(), math.Min(v, s.Max()))
	s.value = v
	s.index = int(math.Floor(v))

	s.surface.SetYData(Primary, s.primary.At(s.index))
	if s.Paired() {
		s.surface.SetYData(Companion, s.companion.At(s.index))
		s.surface.Rescale(Companion)
	}
	s.surface.Redraw()
	return s.index
}

// Close detaches the surface. Later SetValue calls do nothing.
func (s *Session) Close() {
	s.surface = nil
}
