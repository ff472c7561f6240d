// Package render formats scan results for the terminal.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Sector035/chronocalc/internal/scan"
)

// Column headers. The moon table appends the illumination column.
var sunHeaders = []string{"Date and time", "Altitude", "Azimuth"}
var moonHeaders = []string{"Date and time", "Altitude", "Azimuth", "Illumination"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// timestamp formats an instant in the display zone, ISO-8601 with offset.
func timestamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02T15:04:05-07:00")
}

func newTable(headers []string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// WriteSunTable writes the sun results preceded by the closest-match
// heading. Sun results are best-effort, so the table is always printed.
func WriteSunTable(w io.Writer, matches []scan.Match, loc *time.Location) {
	fmt.Fprintln(w, "\nOn the following dates and times the sun is closest to the given parameters:")
	fmt.Fprintln(w)

	t := newTable(sunHeaders)
	for _, m := range matches {
		t.Row(timestamp(m.Time, loc),
			fmt.Sprintf("%.2f", m.AltitudeDeg),
			fmt.Sprintf("%.2f", m.AzimuthDeg))
	}
	fmt.Fprintln(w, t)
}

// WriteMoonTable writes the moon results, or the no-match message when the
// scan found none. An empty result is a normal outcome.
func WriteMoonTable(w io.Writer, matches []scan.Match, loc *time.Location) {
	if len(matches) == 0 {
		WriteNoMatch(w)
		return
	}

	fmt.Fprintln(w, "\nOn the following dates and times the moon is closest to the given parameters:")
	fmt.Fprintln(w)

	t := newTable(moonHeaders)
	for _, m := range matches {
		t.Row(timestamp(m.Time, loc),
			fmt.Sprintf("%.2f", m.AltitudeDeg),
			fmt.Sprintf("%.2f", m.AzimuthDeg),
			fmt.Sprintf("%.1f%%", m.Illumination*100))
	}
	fmt.Fprintln(w, t)
}

// WriteNoMatch writes the plain no-result message.
func WriteNoMatch(w io.Writer) {
	fmt.Fprintln(w, "No possible solution found. Please check the given parameters.")
}
