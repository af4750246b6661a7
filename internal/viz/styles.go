package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var plain bool

// SetPlain turns all styling off, e.g. for piped output.
func SetPlain(on bool) { plain = on }

func render(style lipgloss.Style, s string) string {
	if plain {
		return s
	}
	return style.Render(s)
}

func Heading(s string) string {
	return render(lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Primary), s)
}

func Label(s string) string {
	return render(lipgloss.NewStyle().Foreground(CurrentTheme.Accent), s)
}

func Muted(s string) string {
	return render(lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Italic(true), s)
}

func ErrorText(s string) string {
	return render(lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error), s)
}

// Separator is a horizontal rule of the given width.
func Separator(width int) string {
	if width < 1 {
		return ""
	}
	return Muted(strings.Repeat("─", width))
}

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline maps each value onto one bar character, lowest to highest.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - min) / rng * float64(len(sparkChars)-1))
		b.WriteRune(sparkChars[idx])
	}
	return render(lipgloss.NewStyle().Foreground(CurrentTheme.Accent), b.String())
}
