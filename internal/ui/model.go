// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
	"github.com/litescript/ls-messier/internal/state"
	"github.com/litescript/ls-messier/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewSky
)

// TickMsg triggers a recompute of positions for the carried instant.
type TickMsg time.Time

// chrome is the number of lines used by header, table head and footer.
const chrome = 9

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager
	now   func() time.Time

	viewMode ViewMode
	opts     TableOptions
	width    int
	height   int
	ready    bool
	snapshot state.Snapshot

	// coordinate prompt opened with "c"
	editing  bool
	input    string
	inputErr error
}

// New creates the root UI model. now supplies the observation time on each
// tick; nil means time.Now.
func New(mgr *state.Manager, opts TableOptions, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	if opts.Sort == "" {
		opts.Sort = catalog.SortByNumber
	}
	return Model{state: mgr, now: now, opts: opts}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	now := m.now
	return func() tea.Msg { return TickMsg(now()) }
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.state.Update(time.Time(msg))
		m.snapshot = m.state.Snapshot()
		m.opts.Offset = clamp(m.opts.Offset, 0, m.maxOffset())
		return m, tickCmd(m.state.RefreshInterval(), m.now)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.viewMode = (m.viewMode + 1) % 2
	case "s":
		if m.opts.Sort == catalog.SortByAltitude {
			m.opts.Sort = catalog.SortByNumber
		} else {
			m.opts.Sort = catalog.SortByAltitude
		}
		m.opts.Offset = 0
	case "v":
		m.opts.VisibleOnly = !m.opts.VisibleOnly
		m.opts.Offset = 0
	case "up", "k":
		m.opts.Offset = clamp(m.opts.Offset-1, 0, m.maxOffset())
	case "down", "j":
		m.opts.Offset = clamp(m.opts.Offset+1, 0, m.maxOffset())
	case "pgup":
		m.opts.Offset = clamp(m.opts.Offset-m.pageSize(), 0, m.maxOffset())
	case "pgdown", " ":
		m.opts.Offset = clamp(m.opts.Offset+m.pageSize(), 0, m.maxOffset())
	case "home", "g":
		m.opts.Offset = 0
	case "c":
		m.editing = true
		m.input = ""
		m.inputErr = nil
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.inputErr = nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if strings.ContainsRune("0123456789.-+, ", r) {
				m.input += string(r)
			}
		}
	case tea.KeyEnter:
		obs, err := parseCoords(m.input)
		if err != nil {
			m.inputErr = err
			return m, nil
		}
		m.editing = false
		m.inputErr = nil
		m.state.SetObserver(obs)
		m.state.Update(m.now())
		m.snapshot = m.state.Snapshot()
		m.opts.Offset = 0
	}
	return m, nil
}

var errCoordsFormat = errors.New("enter latitude and longitude, e.g. 40.7 -74.0")

// parseCoords reads "lat lon" or "lat,lon" in degrees, longitude east positive.
func parseCoords(s string) (astro.Observer, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != 2 {
		return astro.Observer{}, errCoordsFormat
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return astro.Observer{}, errCoordsFormat
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return astro.Observer{}, errCoordsFormat
	}
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return astro.Observer{}, fmt.Errorf("latitude %v outside [-90, 90]", lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 360 {
		return astro.Observer{}, fmt.Errorf("longitude %v outside [-180, 360]", lon)
	}
	return astro.Observer{LatDeg: lat, LonDeg: lon}, nil
}

func (m Model) pageSize() int {
	if m.height <= chrome {
		return 1
	}
	return m.height - chrome
}

func (m Model) maxOffset() int {
	n := len(Rows(m.snapshot, m.opts)) - m.pageSize()
	if n < 0 {
		return 0
	}
	return n
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.snapshot.Time.IsZero() {
		return "Computing positions..."
	}

	var b strings.Builder
	b.WriteString(RenderHeader(m.snapshot))
	b.WriteString("\n\n")
	if m.viewMode == ViewSky {
		b.WriteString(RenderSky(m.snapshot, m.width, m.pageSize()+2))
		b.WriteString("\n\n")
	} else {
		opts := m.opts
		opts.Limit = m.pageSize()
		b.WriteString(RenderTable(m.snapshot, opts))
		b.WriteString("\n")
	}
	b.WriteString(RenderEvents(m.snapshot.Events, 2))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderFooter() string {
	if m.editing {
		prompt := headerStyle.Render("Coordinates (lat lon): ") + m.input + "_"
		if m.inputErr != nil {
			prompt += "  " + errorStyle.Render(m.inputErr.Error())
		}
		return prompt + "  " + mutedStyle.Render("enter: apply | esc: cancel")
	}

	total := len(Rows(m.snapshot, m.opts))
	filter := "all"
	if m.opts.VisibleOnly {
		filter = "visible"
	}
	status := fmt.Sprintf("v%s  %d objects (%s)  sort: %s  computed in %s",
		version.Version, total, filter, m.opts.Sort, m.snapshot.ComputeTime.Round(time.Microsecond))
	help := "tab: sky/table | s: sort | v: visible only | c: coordinates | ↑↓: scroll | q: quit"
	return mutedStyle.Render(status + "  |  " + help)
}

// Mode returns the active view.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// Editing reports whether the coordinate prompt is open.
func (m Model) Editing() bool {
	return m.editing
}

// Options returns the current table options.
func (m Model) Options() TableOptions {
	return m.opts
}

func tickCmd(d time.Duration, now func() time.Time) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg(now())
	})
}
