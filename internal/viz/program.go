package viz

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/stringviz/internal/viewer"
)

const (
	defaultPlotWidth = 72
	// columns taken by asciigraph's y labels and the surrounding padding
	plotGutter = 14
	traceRows  = 3
)

// Options tune the viewer program.
type Options struct {
	Title  string
	Step   float64
	Width  int // 0 follows the terminal
	Height int
	Theme  string

	// Trace is the displacement of one point over all steps, drawn as a
	// strip under the plots. Empty hides the strip.
	Trace      []float64
	TraceLabel string
}

// Model is the bubbletea model of the interactive viewer. Every key that
// moves the control goes straight to Session.SetValue.
type Model struct {
	session *viewer.Session
	figure  *Figure
	slider  Slider
	keys    KeyMap
	help    help.Model
	theme   Theme
	opts    Options
	width   int
	charts  []string
}

func NewModel(sess *viewer.Session, fig *Figure, opts Options) Model {
	if opts.Step <= 0 {
		opts.Step = 1
	}
	if opts.Height < 2 {
		opts.Height = 2
	}
	width := opts.Width
	if width <= 0 {
		width = defaultPlotWidth
	}

	m := Model{
		session: sess,
		figure:  fig,
		slider:  Slider{Label: "Time [arbitrary units]", Min: sess.Min(), Max: sess.Max(), Width: width},
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   GetTheme(opts.Theme),
		opts:    opts,
		width:   width,
	}
	m.charts = fig.Charts(width, opts.Height)
	fig.TakeDirty()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles keys and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.move(-m.opts.Step)
		case key.Matches(msg, m.keys.Forward):
			m.move(m.opts.Step)
		case key.Matches(msg, m.keys.FastBack):
			m.move(-10 * m.opts.Step)
		case key.Matches(msg, m.keys.FastForward):
			m.move(10 * m.opts.Step)
		case key.Matches(msg, m.keys.First):
			m.session.SetValue(m.session.Min())
		case key.Matches(msg, m.keys.Last):
			m.session.SetValue(m.session.Max())
		case key.Matches(msg, m.keys.Theme):
			m.theme = NextTheme(m.theme.Name)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.opts.Width <= 0 && msg.Width > 2*plotGutter {
			m.width = msg.Width - plotGutter
			m.slider.Width = m.width
			m.figure.Redraw()
		}
	}

	if m.figure.TakeDirty() {
		m.charts = m.figure.Charts(m.width, m.opts.Height)
	}
	return m, nil
}

func (m *Model) move(delta float64) {
	m.session.SetValue(m.session.Value() + delta)
}

// View renders the plots, the time control and the key help.
func (m Model) View() string {
	st := m.theme.styles()
	value := m.session.Value()

	var b strings.Builder
	b.WriteString(st.header.Render(strings.ToUpper(m.opts.Title)) + "\n")
	for i, chart := range m.charts {
		style := st.primary
		if i > 0 {
			style = st.secondary
		}
		b.WriteString(style.Render(chart) + "\n\n")
	}

	if len(m.opts.Trace) > 0 {
		b.WriteString(st.subtle.Render(m.opts.TraceLabel) + "\n")
		strip := TraceStrip(m.opts.Trace, m.session.Index(), m.width/2, traceRows)
		b.WriteString(st.primary.Render(strip.String()) + "\n\n")
	}

	filled, knob, rest := m.slider.Track(value)
	b.WriteString(st.subtle.Render(m.slider.Label) + "\n")
	b.WriteString(st.filled.Render(filled) + st.knob.Render(knob) + st.track.Render(rest) + "\n")
	b.WriteString(st.value.Render(m.slider.Readout(value, m.session.Index())) + "\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run shows the viewer until the user quits or ctx is done.
func Run(ctx context.Context, sess *viewer.Session, fig *Figure, opts Options) error {
	p := tea.NewProgram(NewModel(sess, fig, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
