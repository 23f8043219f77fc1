// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
)

// EventType represents the type of sky change event.
type EventType string

const (
	EventRise     EventType = "RISE"
	EventSet      EventType = "SET"
	EventTwilight EventType = "TWILIGHT"
)

// Event represents a change between two updates.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Object    string    `json:"object,omitempty"`
	Phase     string    `json:"phase,omitempty"`
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	observer    astro.Observer
	transformer astro.Transformer
	objects     []catalog.Object
	stars       []catalog.Star

	// Current state
	positions   []catalog.Position
	starPos     []catalog.StarPosition
	at          time.Time
	sunAltDeg   float64
	sunErr      error
	phase       astro.TwilightPhase
	computeTime time.Duration
	hasData     bool

	// Previous visibility for event detection, keyed by Messier number
	prevVisible map[int]bool

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
	minAltitude     float64
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
	MinAltitude     float64 // visibility threshold for rise/set events
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: 5 * time.Second,
	}
}

// NewManager creates a state manager computing positions of objs for obs.
// A nil objs means the full catalog.
func NewManager(cfg Config, tr astro.Transformer, obs astro.Observer, objs []catalog.Object) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	if objs == nil {
		objs = catalog.All()
	}
	return &Manager{
		observer:        obs,
		transformer:     tr,
		objects:         objs,
		stars:           catalog.GuideStars(),
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		minAltitude:     cfg.MinAltitude,
		prevVisible:     make(map[int]bool),
	}
}

// Update recomputes every object's position for instant t.
func (m *Manager) Update(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	positions := catalog.Positions(m.transformer, m.objects, m.observer, t)
	stars := catalog.StarPositions(m.transformer, m.stars, m.observer, t)
	sunAlt, sunErr := m.transformer.SunAltitude(m.observer, t)
	phase := astro.Twilight(sunAlt)
	m.computeTime = time.Since(start)

	m.detectEvents(t, positions, phase, sunErr == nil)

	m.positions = positions
	m.starPos = stars
	m.at = t
	m.sunAltDeg = sunAlt
	m.sunErr = sunErr
	m.phase = phase
	m.hasData = true
}

// detectEvents compares new positions with the previous update.
func (m *Manager) detectEvents(t time.Time, positions []catalog.Position, phase astro.TwilightPhase, phaseOK bool) {
	if m.hasData && phaseOK && m.sunErr == nil && phase != m.phase {
		m.addEvent(Event{Type: EventTwilight, Timestamp: t, Phase: phase.String()})
	}

	for _, p := range positions {
		if p.Err != nil {
			continue
		}
		visible := p.Visible(m.minAltitude)
		was, known := m.prevVisible[p.Object.Number]
		m.prevVisible[p.Object.Number] = visible
		if !known || was == visible {
			continue
		}

		e := Event{Type: EventSet, Timestamp: t, Object: p.Object.ID()}
		if visible {
			e.Type = EventRise
		}
		m.addEvent(e)
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

// SetObserver moves the observer. Rise/set tracking restarts from the next
// update since previous visibility no longer applies.
func (m *Manager) SetObserver(obs astro.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observer = obs
	m.prevVisible = make(map[int]bool)
	m.hasData = false
}

// Observer returns the current observer.
func (m *Manager) Observer() astro.Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.observer
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Observer    astro.Observer
	Time        time.Time
	Positions   []catalog.Position
	Stars       []catalog.StarPosition
	SunAltDeg   float64
	SunErr      error
	Phase       astro.TwilightPhase
	ComputeTime time.Duration
	Events      []Event
	MinAltitude float64
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ps := make([]catalog.Position, len(m.positions))
	copy(ps, m.positions)
	stars := make([]catalog.StarPosition, len(m.starPos))
	copy(stars, m.starPos)

	return Snapshot{
		Observer:    m.observer,
		Time:        m.at,
		Positions:   ps,
		Stars:       stars,
		SunAltDeg:   m.sunAltDeg,
		SunErr:      m.sunErr,
		Phase:       m.phase,
		ComputeTime: m.computeTime,
		Events:      m.getEventsOrdered(),
		MinAltitude: m.minAltitude,
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

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

// HasData returns true once positions have been computed for the current
// observer.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasData
}
