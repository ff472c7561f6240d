// Package ui provides an interactive result browser using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sector035/chronocalc/internal/ephem"
	"github.com/Sector035/chronocalc/internal/scan"
	"github.com/Sector035/chronocalc/internal/version"
)

const (
	colorTitle    = "135" // purple
	colorSelected = "212" // pink
	colorDim      = "60"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorTitle)).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSelected)).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
)

// Model is the result browser model. It receives its matches once, up
// front; there is no refresh loop.
type Model struct {
	body    ephem.Body
	target  scan.Target
	matches []scan.Match
	loc     *time.Location

	cursor int
	width  int
	height int
}

// New creates a result browser over the given matches.
func New(body ephem.Body, target scan.Target, matches []scan.Match, loc *time.Location) Model {
	return Model{
		body:    body,
		target:  target,
		matches: matches,
		loc:     loc,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			if len(m.matches) > 0 {
				m.cursor = len(m.matches) - 1
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("chronocalc %s — %s matches for alt %.1f° az %.1f°",
		version.Version, m.body, m.target.AltitudeDeg, m.target.AzimuthDeg)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString("No possible solution found. Please check the given parameters.\n")
		b.WriteString(dimStyle.Render("\nq quit"))
		return b.String()
	}

	for i, match := range m.matches {
		line := m.matchLine(match)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailLine(m.matches[m.cursor]))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select · q quit"))
	return b.String()
}

// matchLine renders one result row.
func (m Model) matchLine(match scan.Match) string {
	line := fmt.Sprintf("%s   alt %6.2f°   az %6.2f°",
		match.Time.In(m.loc).Format("2006-01-02T15:04:05-07:00"),
		match.AltitudeDeg, match.AzimuthDeg)
	if m.body == ephem.BodyMoon {
		line += fmt.Sprintf("   %5.1f%% lit", match.Illumination*100)
	}
	return line
}

// detailLine renders the selected match's UTC instant and distance.
func (m Model) detailLine(match scan.Match) string {
	return dimStyle.Render(fmt.Sprintf("UTC %s · %.2f° from target",
		match.Time.UTC().Format(time.RFC3339), match.Distance))
}
