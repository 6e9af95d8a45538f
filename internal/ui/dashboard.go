package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sunpos/internal/state"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	upStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	downStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("61"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel is the main position view.
type DashboardModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	lastErr  error
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	return m
}

// SetError sets the last error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.Data == nil {
		if m.lastErr == nil {
			b.WriteString("Computing sun position...\n")
		}
		return b.String()
	}

	b.WriteString(m.renderPositionPanel())
	b.WriteString("\n")
	b.WriteString(m.renderEventsPanel())

	if events := m.snapshot.Events; len(events) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderEventLog(events))
	}

	return b.String()
}

func (m DashboardModel) renderPositionPanel() string {
	var b strings.Builder
	data := m.snapshot.Data
	pos := data.Position

	b.WriteString(titleStyle.Render("Sun Position"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %s UT", data.Timestamp.Format("2006-01-02 15:04:05"))))
	b.WriteString("\n")

	status := downStyle.Render("below horizon")
	if pos.AltitudeRefract > 0 {
		status = upStyle.Render("above horizon")
	}

	rows := []struct {
		label string
		value string
	}{
		{"Azimuth", fmt.Sprintf("%8.3f°  (%s)", pos.Azimuth, compassPoint(pos.Azimuth))},
		{"Altitude", fmt.Sprintf("%8.3f°  %s", pos.AltitudeRefract, status)},
		{"Right asc.", fmt.Sprintf("%8.3f°", pos.RightAscension*degPerRad)},
		{"Declination", fmt.Sprintf("%8.3f°", pos.Declination*degPerRad)},
		{"Distance", fmt.Sprintf("%10.6f AU", pos.Distance)},
		{"Julian Day", fmt.Sprintf("%14.5f", pos.JulianDay)},
	}
	for _, r := range rows {
		b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-12s", r.label)) + valueStyle.Render(r.value) + "\n")
	}

	for _, w := range pos.Warnings {
		b.WriteString("  " + warnStyle.Render("⚠ "+w.String()) + "\n")
	}

	return b.String()
}

const degPerRad = 180 / math.Pi

func (m DashboardModel) renderEventsPanel() string {
	var b strings.Builder
	ev := m.snapshot.Data.Events

	b.WriteString(titleStyle.Render("Today"))
	b.WriteString("\n")

	switch {
	case ev.AlwaysAbove:
		b.WriteString("  " + upStyle.Render("Midnight sun — above the horizon all day") + "\n")
	case ev.AlwaysBelow:
		b.WriteString("  " + downStyle.Render("Polar night — below the horizon all day") + "\n")
	default:
		b.WriteString(fmt.Sprintf("  %s%s\n",
			labelStyle.Render("Sunrise      "),
			valueStyle.Render(fmt.Sprintf("%s UT  az %6.2f°", formatHours(ev.RiseTime), ev.RiseAzimuth))))
		b.WriteString(fmt.Sprintf("  %s%s\n",
			labelStyle.Render("Transit      "),
			valueStyle.Render(fmt.Sprintf("%s UT  alt %6.2f°", formatHours(ev.TransitTime), ev.TransitAltitude))))
		b.WriteString(fmt.Sprintf("  %s%s\n",
			labelStyle.Render("Sunset       "),
			valueStyle.Render(fmt.Sprintf("%s UT  az %6.2f°", formatHours(ev.SetTime), ev.SetAzimuth))))
	}

	return b.String()
}

func (m DashboardModel) renderEventLog(events []state.Event) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Events"))
	b.WriteString("\n")

	// Most recent last; show at most five
	start := 0
	if len(events) > 5 {
		start = len(events) - 5
	}
	for _, e := range events[start:] {
		line := fmt.Sprintf("%s  %-12s %s",
			e.Timestamp.Format("15:04:05"), string(e.Type), e.Detail)
		b.WriteString("  " + labelStyle.Render(line) + "\n")
	}

	return b.String()
}

// formatHours renders fractional hours UT as hh:mm:ss, or a dash when the
// event does not occur.
func formatHours(h float64) string {
	if math.IsNaN(h) {
		return "--:--:--"
	}
	total := int(h*3600 + 0.5)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// compassPoint maps a north-zero azimuth in degrees to a 16-wind name.
func compassPoint(az float64) string {
	points := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	idx := int(math.Mod(az+11.25, 360) / 22.5)
	if idx < 0 || idx >= len(points) {
		idx = 0
	}
	return points[idx]
}
