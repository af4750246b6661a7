package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for styled output
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeChalkboard = Theme{
		Name:    "chalkboard",
		Primary: lipgloss.Color("#7fd1b9"),
		Accent:  lipgloss.Color("#f6e27f"),
		Text:    lipgloss.Color("#f0f0f0"),
		Muted:   lipgloss.Color("#7a8b85"),
		Error:   lipgloss.Color("#ff6b6b"),
	}

	ThemeNotebook = Theme{
		Name:    "notebook",
		Primary: lipgloss.Color("#3a6ea5"),
		Accent:  lipgloss.Color("#c0392b"),
		Text:    lipgloss.Color("#222222"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#c0392b"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#ff0000"),
	}

	Themes = []Theme{ThemeChalkboard, ThemeNotebook, ThemeMinimal}

	CurrentTheme = ThemeChalkboard
)

// LookupTheme reports whether name is a known theme.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeChalkboard, false
}

// GetTheme returns a theme by name, falling back to chalkboard.
func GetTheme(name string) Theme {
	t, _ := LookupTheme(name)
	return t
}

// SetTheme switches the current theme and reports whether name was known.
func SetTheme(name string) bool {
	t, ok := LookupTheme(name)
	CurrentTheme = t
	return ok
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
