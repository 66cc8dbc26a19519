package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the viewer
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

type styles struct {
	header    lipgloss.Style
	subtle    lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	filled    lipgloss.Style
	knob      lipgloss.Style
	track     lipgloss.Style
	value     lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		header:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).MarginBottom(1),
		subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		primary:   lipgloss.NewStyle().Foreground(t.Primary),
		secondary: lipgloss.NewStyle().Foreground(t.Secondary),
		filled:    lipgloss.NewStyle().Foreground(t.Primary),
		knob:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		track:     lipgloss.NewStyle().Foreground(t.Muted),
		value:     lipgloss.NewStyle().Foreground(t.Text),
	}
}
