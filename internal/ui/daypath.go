package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sunpos/internal/state"
	"github.com/litescript/ls-sunpos/internal/trace"
)

// SparklineWidth is the fixed width of the day-path sparkline.
const SparklineWidth = 48

// sparklineBlocks are the Unicode block characters for sparkline (0 = lowest, 7 = highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// altColorLow is the color for the horizon (deep red-orange).
var altColorLow = [3]uint8{0x7c, 0x2d, 0x12}

// altColorMid is the color for mid altitude (amber).
var altColorMid = [3]uint8{0xd9, 0x77, 0x06}

// altColorHigh is the color for high altitude (bright gold).
var altColorHigh = [3]uint8{0xfd, 0xe0, 0x47}

// DayPathModel renders the sun's altitude over the day as a sparkline with
// an hour-by-hour table beneath it.
type DayPathModel struct {
	width    int
	height   int
	snapshot state.Snapshot
	scroll   int
}

// NewDayPathModel creates a new day path model.
func NewDayPathModel() DayPathModel {
	return DayPathModel{}
}

// Init implements the Bubble Tea model interface.
func (m DayPathModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DayPathModel) SetSize(width, height int) DayPathModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with new data.
func (m DayPathModel) UpdateData(snapshot state.Snapshot) DayPathModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages.
func (m DayPathModel) Update(msg tea.Msg) (DayPathModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "home":
			m.scroll = 0
		}
	}
	return m, nil
}

// View renders the day path.
func (m DayPathModel) View() string {
	if m.snapshot.Data == nil {
		return "Computing sun position...\n"
	}

	var b strings.Builder
	day := m.snapshot.Data.Day

	b.WriteString(titleStyle.Render("Day Path"))
	b.WriteString(labelStyle.Render("  " + day.Start.Format("2006-01-02") + " UT"))
	b.WriteString("\n\n")

	b.WriteString("  " + m.renderAltitudeSparkline(day))
	b.WriteString("\n\n")
	b.WriteString(m.renderHourTable(day))

	return b.String()
}

// renderAltitudeSparkline renders the day's altitude curve as a colored
// sparkline. Below-horizon samples render as dim low blocks.
func (m DayPathModel) renderAltitudeSparkline(day trace.DayTrace) string {
	samples := resampleAltitude(day.Samples, SparklineWidth)
	if len(samples) == 0 {
		return labelStyle.Render("no samples")
	}

	var sb strings.Builder
	for _, alt := range samples {
		if alt <= 0 {
			sb.WriteString(downStyle.Render(string(sparklineBlocks[0])))
			continue
		}
		if alt > 90 {
			alt = 90
		}

		t := alt / 90.0
		blockIdx := int(t * 7.0)
		if blockIdx > 7 {
			blockIdx = 7
		}

		r, g, bl := interpolateAltColor(t)
		color := fmt.Sprintf("#%02x%02x%02x", r, g, bl)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(sparklineBlocks[blockIdx])))
	}

	// Current altitude marker
	if cur := day.Closest(m.snapshot.Data.Timestamp); cur != nil {
		nowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
		sb.WriteString(nowStyle.Render(fmt.Sprintf(" now: %.1f°", cur.Altitude)))
	}

	return sb.String()
}

func (m DayPathModel) renderHourTable(day trace.DayTrace) string {
	var b strings.Builder

	header := fmt.Sprintf("  %-8s %10s %10s", "Time", "Azimuth", "Altitude")
	b.WriteString(labelStyle.Render(header))
	b.WriteString("\n")

	hourly := hourlySamples(day)

	maxRows := m.height - 10
	if maxRows < 6 {
		maxRows = 6
	}
	start := m.scroll
	if start > len(hourly)-maxRows {
		start = len(hourly) - maxRows
	}
	if start < 0 {
		start = 0
	}
	end := start + maxRows
	if end > len(hourly) {
		end = len(hourly)
	}

	for _, s := range hourly[start:end] {
		row := fmt.Sprintf("  %-8s %9.2f° %9.2f°", s.Time.Format("15:04"), s.Azimuth, s.Altitude)
		if s.Altitude > 0 {
			b.WriteString(upStyle.Render(row))
		} else {
			b.WriteString(labelStyle.Render(row))
		}
		b.WriteString("\n")
	}

	if len(hourly) > maxRows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  showing %d-%d of %d", start+1, end, len(hourly))))
		b.WriteString("\n")
	}

	return b.String()
}

// hourlySamples thins the trace to on-the-hour samples.
func hourlySamples(day trace.DayTrace) []trace.Sample {
	var out []trace.Sample
	for _, s := range day.Samples {
		if s.Time.Minute() == 0 && s.Time.Second() == 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return day.Samples
	}
	return out
}

// resampleAltitude reduces the trace samples to exactly width values by
// nearest-sample lookup across the covered interval.
func resampleAltitude(samples []trace.Sample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}
	if len(samples) == 1 {
		out := make([]float64, width)
		for i := range out {
			out[i] = samples[0].Altitude
		}
		return out
	}

	start := samples[0].Time
	span := samples[len(samples)-1].Time.Sub(start)
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		at := start.Add(time.Duration(float64(span) * float64(i) / float64(width-1)))
		out[i] = nearestAltitude(samples, at)
	}
	return out
}

func nearestAltitude(samples []trace.Sample, at time.Time) float64 {
	best := samples[0]
	bestDiff := absDuration(samples[0].Time.Sub(at))
	for _, s := range samples[1:] {
		d := absDuration(s.Time.Sub(at))
		if d < bestDiff {
			best = s
			bestDiff = d
		}
	}
	return best.Altitude
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// interpolateAltColor returns RGB color for altitude value t in [0, 1].
// Gradient: horizon (red-orange) → mid (amber) → high (gold).
func interpolateAltColor(t float64) (uint8, uint8, uint8) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	var r, g, b uint8
	if t < 0.5 {
		s := t * 2
		r = uint8(float64(altColorLow[0])*(1-s) + float64(altColorMid[0])*s)
		g = uint8(float64(altColorLow[1])*(1-s) + float64(altColorMid[1])*s)
		b = uint8(float64(altColorLow[2])*(1-s) + float64(altColorMid[2])*s)
	} else {
		s := (t - 0.5) * 2
		r = uint8(float64(altColorMid[0])*(1-s) + float64(altColorHigh[0])*s)
		g = uint8(float64(altColorMid[1])*(1-s) + float64(altColorHigh[1])*s)
		b = uint8(float64(altColorMid[2])*(1-s) + float64(altColorHigh[2])*s)
	}

	return r, g, b
}
