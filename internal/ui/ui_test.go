package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-sunpos/internal/config"
	"github.com/litescript/ls-sunpos/internal/state"
)

// keyMsg builds a KeyMsg for a named key or a single rune.
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func testSites() []config.Site {
	return []config.Site{
		{Name: "arnhem", Latitude: 51.987380, Longitude: 5.950270},
		{Name: "longyearbyen", Latitude: 78.22, Longitude: 15.65},
	}
}

func TestModelViewSwitching(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	if m.viewMode != ViewDashboard {
		t.Fatalf("initial view = %v, want dashboard", m.viewMode)
	}

	next, _ := m.Update(keyMsg("2"))
	m = next.(Model)
	if m.viewMode != ViewDayPath {
		t.Errorf("after '2' view = %v, want day path", m.viewMode)
	}

	next, _ = m.Update(keyMsg("tab"))
	m = next.(Model)
	if m.viewMode != ViewDashboard {
		t.Errorf("tab should cycle back to dashboard, got %v", m.viewMode)
	}
}

func TestModelSiteCycling(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	next, cmd := m.Update(keyMsg("s"))
	m = next.(Model)
	if m.Site().Name != "longyearbyen" {
		t.Errorf("site after cycle = %q, want longyearbyen", m.Site().Name)
	}
	if cmd == nil {
		t.Error("site change should trigger a recompute command")
	}

	next, _ = m.Update(keyMsg("s"))
	m = next.(Model)
	if m.Site().Name != "arnhem" {
		t.Errorf("site should wrap around, got %q", m.Site().Name)
	}
}

func TestModelQuit(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("command produced %v, want QuitMsg", msg)
	}
}

func TestModelViewBeforeReady(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	if out := m.View(); !strings.Contains(out, "Initializing") {
		t.Errorf("pre-ready view = %q", out)
	}
}

func TestModelViewAfterResize(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "site: arnhem") {
		t.Errorf("header should name the active site:\n%s", out)
	}
	if !strings.Contains(out, "[1] Dashboard") || !strings.Contains(out, "[2] Day Path") {
		t.Errorf("tabs missing:\n%s", out)
	}
}

func TestModelDataUpdatePropagates(t *testing.T) {
	m := New(state.NewManager(state.DefaultConfig()), testSites(), 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	snap := state.Snapshot{Data: testSunData(t)}
	next, _ = m.Update(DataUpdateMsg{Snapshot: snap})
	m = next.(Model)

	if out := m.View(); !strings.Contains(out, "Sun Position") {
		t.Errorf("dashboard did not receive data:\n%s", out)
	}
}

func TestGradientColorFormat(t *testing.T) {
	for _, col := range []int{0, 20, 40, 75} {
		c := gradientColor(col, 0, 76, 6)
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("gradientColor(%d) = %q, want #RRGGBB", col, c)
		}
	}
}
