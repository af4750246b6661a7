package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/roster/internal/roster"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateCount state = iota
	stateStudents
	stateDone
)

type model struct {
	state  state
	buf    string
	errMsg string
	sep    string

	class  *roster.Class
	filled int
	result *roster.Result

	quit bool
}

// NewEntryApp returns the entry form; sep joins students in the summary.
func NewEntryApp(sep string) model {
	if sep == "" {
		sep = ", "
	}
	return model{state: stateCount, sep: sep}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quit = true
		return m, tea.Quit
	}

	if m.state == stateDone {
		switch key.String() {
		case "q", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.buf) > 0 {
			r := []rune(m.buf)
			m.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.buf += " "
	case tea.KeyRunes:
		m.buf += string(key.Runes)
	}
	return m, nil
}

func (m *model) submit() {
	line := strings.TrimSpace(m.buf)
	m.buf = ""
	m.errMsg = ""

	switch m.state {
	case stateCount:
		n, err := roster.ParseCount(line)
		if err != nil {
			m.errMsg = fmt.Sprintf("%q is not a student count (0 to %d)", line, roster.MaxStudents)
			return
		}
		m.class = roster.NewClass(n)
		m.filled = 0
		m.state = stateStudents
		m.finishIfFull()
	case stateStudents:
		s, err := roster.ParseStudent(line)
		if err != nil {
			m.errMsg = "enter a name and a whole-number standard, nothing else"
			return
		}
		*m.class.Index(m.filled) = s
		m.filled++
		m.finishIfFull()
	}
}

func (m *model) finishIfFull() {
	if m.filled == m.class.Len() {
		m.result = roster.Assemble(m.class)
		m.state = stateDone
	}
}

// Result is nil until every student has been entered.
func (m model) Result() *roster.Result { return m.result }

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("r o s t e r") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	switch m.state {
	case stateCount:
		b.WriteString("      " + white.Render("number of students in class 1: ") + magenta.Render(m.buf+"▋") + "\n")
	case stateStudents:
		for i := 0; i < m.filled; i++ {
			b.WriteString("        " + dim.Render(m.class.Index(i).String()) + "\n")
		}
		prompt := fmt.Sprintf("student %d of %d (name standard): ", m.filled+1, m.class.Len())
		b.WriteString("      " + white.Render(prompt) + magenta.Render(m.buf+"▋") + "\n")
	case stateDone:
		b.WriteString("      " + cyan.Render("class 1  ") + white.Render(m.result.First.ToText(m.sep)) + "\n")
		b.WriteString("      " + cyan.Render("class 2  ") + white.Render(m.result.Copy.ToText(m.sep)) + "\n")
		b.WriteString("      " + cyan.Render("class 3  ") + white.Render(m.result.Merged.ToText(m.sep)) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n      " + red.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n")
	if m.state == stateDone {
		b.WriteString(dim.Render("      enter/q quit") + "\n")
	} else {
		b.WriteString(dim.Render("      enter confirm   esc quit") + "\n")
	}
	return b.String()
}

// RunEntry runs the form and returns the assembled classes, or nil when
// the user quit before finishing.
func RunEntry(sep string) (*roster.Result, error) {
	p := tea.NewProgram(NewEntryApp(sep))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(model).Result(), nil
}
