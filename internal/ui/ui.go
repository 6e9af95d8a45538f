// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-sunpos/internal/config"
	"github.com/litescript/ls-sunpos/internal/state"
	"github.com/litescript/ls-sunpos/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewDayPath
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// DataUpdateMsg signals a new computed snapshot is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	sites []config.Site

	// UI state
	viewMode ViewMode
	siteIdx  int
	width    int
	height   int
	ready    bool
	animTick int

	// Sub-models
	dashboard DashboardModel
	dayPath   DayPathModel

	// Data snapshot (updated on DataUpdateMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model. The sites slice must be non-empty; the
// view starts on the site at startIdx.
func New(stateMgr *state.Manager, sites []config.Site, startIdx int) Model {
	if startIdx < 0 || startIdx >= len(sites) {
		startIdx = 0
	}
	return Model{
		state:     stateMgr,
		sites:     sites,
		siteIdx:   startIdx,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		dayPath:   NewDayPathModel(),
	}
}

// Site returns the currently selected observing site.
func (m Model) Site() config.Site {
	return m.sites[m.siteIdx]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		animTickCmd(),
		m.computeCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "d":
			m.viewMode = ViewDashboard
		case "2", "p":
			m.viewMode = ViewDayPath

		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "s":
			// Cycle through configured sites and recompute immediately
			m.siteIdx = (m.siteIdx + 1) % len(m.sites)
			cmds = append(cmds, m.computeCmd())
		case "S":
			m.siteIdx = (m.siteIdx - 1 + len(m.sites)) % len(m.sites)
			cmds = append(cmds, m.computeCmd())

		case "r":
			cmds = append(cmds, m.computeCmd())

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~10 lines, footer ~2 lines
		contentHeight := msg.Height - 13
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.dayPath = m.dayPath.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		if m.dueForRecompute() {
			cmds = append(cmds, m.computeCmd())
		}

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.dashboard = m.dashboard.UpdateData(m.snapshot)
		m.dayPath = m.dayPath.UpdateData(m.snapshot)

	case ErrorMsg:
		m.dashboard = m.dashboard.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewDayPath:
		m.dayPath, cmd = m.dayPath.Update(msg)
	}
	return cmd
}

func (m Model) dueForRecompute() bool {
	last := m.snapshot.LastCompute
	if last.IsZero() {
		return true
	}
	return time.Since(last) >= m.state.RefreshInterval()
}

// computeCmd recomputes the sun state for the current site off the UI
// goroutine and delivers the fresh snapshot.
func (m Model) computeCmd() tea.Cmd {
	site := m.Site()
	mgr := m.state
	return func() tea.Msg {
		started := time.Now()
		data, err := ComputeSun(site, time.Now().UTC())
		mgr.Update(data, time.Since(started), err)
		if err != nil {
			return ErrorMsg{Error: err}
		}
		return DataUpdateMsg{Snapshot: mgr.Snapshot()}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewDayPath:
		content = m.dayPath.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// ASCII art with smooth truecolor gradient
	logo := []string{
		`  ██╗     ███████╗      ███████╗██╗   ██╗███╗   ██╗██████╗  ██████╗ ███████╗`,
		`  ██║     ██╔════╝      ██╔════╝██║   ██║████╗  ██║██╔══██╗██╔═══██╗██╔════╝`,
		`  ██║     ███████╗█████╗███████╗██║   ██║██╔██╗ ██║██████╔╝██║   ██║███████╗`,
		`  ██║     ╚════██║╚════╝╚════██║██║   ██║██║╚██╗██║██╔═══╝ ██║   ██║╚════██║`,
		`  ███████╗███████║      ███████║╚██████╔╝██║ ╚████║██║     ╚██████╔╝███████║`,
		`  ╚══════╝╚══════╝      ╚══════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝      ╚═════╝ ╚══════╝`,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		lineLen := len(runes)

		for col, r := range runes {
			color := gradientColor(col, row, lineLen, len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Solar Position · Terminal Ephemeris"))
	b.WriteString("\n")

	copyright := fmt.Sprintf("  (c) 2026 litescript.net | v%s | site: %s", version.Version, m.Site().Name)
	b.WriteString(muted.Render(copyright))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient.
// Creates a sunrise effect: deep orange -> amber -> gold -> pale yellow.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Deep orange (#EA580C) -> Amber (#F59E0B) -> Gold (#FACC15) -> Pale (#FEF08A)
	var r, g, b float64

	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 234 + t*(245-234)
		g = 88 + t*(158-88)
		b = 12 + t*(11-12)
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 245 + t*(250-245)
		g = 158 + t*(204-158)
		b = 11 + t*(21-11)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 250 + t*(254-250)
		g = 204 + t*(240-204)
		b = 21 + t*(138-21)
	}

	// Vertical fade: brighter at top, darker toward bottom
	brightnessFactor := 1.0 - (yRatio * 0.5)
	r *= brightnessFactor
	g *= brightnessFactor
	b *= brightnessFactor

	ri, gi, bi := clamp8(r), clamp8(g), clamp8(b)
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v float64) int {
	i := int(v)
	if i > 255 {
		return 255
	}
	if i < 0 {
		return 0
	}
	return i
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Dashboard", "[2] Day Path"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	if m.snapshot.LastError != nil {
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	} else if !m.snapshot.LastCompute.IsZero() {
		next := m.snapshot.LastCompute.Add(m.state.RefreshInterval())
		countdown := time.Until(next).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" refresh in %ds", int(countdown.Seconds())))
		if m.snapshot.ComputeDuration > 0 {
			status += dimStyle.Render(" (" + m.snapshot.ComputeDuration.Round(time.Microsecond).String() + ")")
		}
	} else {
		status = accentStyle.Render(spinner) + dimStyle.Render(" Computing...")
	}

	var help string
	switch m.viewMode {
	case ViewDayPath:
		help = dimStyle.Render("s: site | ↑↓: scroll | tab: switch view")
	default:
		help = dimStyle.Render("s: site | r: recompute | tab: switch view")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
