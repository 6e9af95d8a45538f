// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-sunpos/internal/ephem"
	"github.com/litescript/ls-sunpos/internal/riseset"
	"github.com/litescript/ls-sunpos/internal/trace"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventSunrise     EventType = "SUNRISE"
	EventSunset      EventType = "SUNSET"
	EventWarning     EventType = "WARNING"
	EventRecovered   EventType = "RECOVERED"
	EventSiteChanged EventType = "SITE_CHANGED"
)

// Event represents a state change between updates.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Site      string    `json:"site,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// SunData is one computed update: the instantaneous position plus the
// day context it was computed in. Angles are degrees, azimuth north-zero.
type SunData struct {
	Timestamp time.Time
	Site      string

	Position ephem.Position
	Events   riseset.Result
	Day      trace.DayTrace
}

// TimeSeries is a single data point with timestamp.
type TimeSeries struct {
	Timestamp time.Time
	Value     float64
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *SunData
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// Altitude/azimuth history for the sparkline panels
	altHistory []TimeSeries
	azHistory  []TimeSeries
	maxHistory int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   120, // 2 hours at 1 update/min
		MaxEvents:       50,  // Last 50 events
		RefreshInterval: 10 * time.Second,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	maxHistory := cfg.MaxHistoryLen
	if maxHistory <= 0 {
		maxHistory = 120
	}
	return &Manager{
		maxHistory:      maxHistory,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically updates the state with a new computed snapshot.
func (m *Manager) Update(data *SunData, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if data == nil {
		return
	}

	// Detect events before replacing the current state
	m.detectEvents(data)

	m.current = data

	m.altHistory = appendBounded(m.altHistory, TimeSeries{
		Timestamp: data.Timestamp, Value: data.Position.AltitudeRefract,
	}, m.maxHistory)
	m.azHistory = appendBounded(m.azHistory, TimeSeries{
		Timestamp: data.Timestamp, Value: data.Position.Azimuth,
	}, m.maxHistory)
}

func appendBounded(s []TimeSeries, p TimeSeries, max int) []TimeSeries {
	s = append(s, p)
	if len(s) > max {
		s = s[1:]
	}
	return s
}

// detectEvents compares new data with the previous state and generates events.
func (m *Manager) detectEvents(newData *SunData) {
	now := time.Now()

	if m.current == nil {
		return
	}
	prev := m.current

	if prev.Site != newData.Site {
		m.addEvent(Event{
			Type:      EventSiteChanged,
			Timestamp: now,
			Site:      newData.Site,
			Detail:    "was " + prev.Site,
		})
		// Horizon crossings against a different site are meaningless.
		return
	}

	prevUp := prev.Position.AltitudeRefract > 0
	newUp := newData.Position.AltitudeRefract > 0
	switch {
	case newUp && !prevUp:
		m.addEvent(Event{Type: EventSunrise, Timestamp: now, Site: newData.Site})
	case !newUp && prevUp:
		m.addEvent(Event{Type: EventSunset, Timestamp: now, Site: newData.Site})
	}

	prevWarn := len(prev.Position.Warnings) > 0
	newWarn := len(newData.Position.Warnings) > 0
	switch {
	case newWarn && !prevWarn:
		m.addEvent(Event{
			Type:      EventWarning,
			Timestamp: now,
			Site:      newData.Site,
			Detail:    newData.Position.Warnings[0].String(),
		})
	case !newWarn && prevWarn:
		m.addEvent(Event{Type: EventRecovered, Timestamp: now, Site: newData.Site})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Data            *SunData
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	AltHistory      []TimeSeries
	AzHistory       []TimeSeries
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	alt := make([]TimeSeries, len(m.altHistory))
	copy(alt, m.altHistory)
	az := make([]TimeSeries, len(m.azHistory))
	copy(az, m.azHistory)

	return Snapshot{
		Data:            m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		AltHistory:      alt,
		AzHistory:       az,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one update has succeeded.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
