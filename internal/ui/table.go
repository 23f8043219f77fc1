package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-messier/internal/astro"
	"github.com/litescript/ls-messier/internal/catalog"
	"github.com/litescript/ls-messier/internal/state"
)

// Display colors
const (
	colorVisHigh   = "#7CFC00" // Lawn green - high elevation
	colorVisMedium = "#FFD700" // Gold - medium elevation
	colorVisLow    = "#FF6347" // Tomato - low elevation
	colorVisNone   = "#444444" // Dark gray - below horizon

	colorSunSafe    = "#7CFC00"
	colorSunCaution = "#FFD700"
	colorSunWarning = "#FF4500"

	colorAccent = "#9D4EDD"
	colorMuted  = "60"
	colorError  = "#E84A27"
)

// Magnitude colors, brightest first.
var magnitudeColors = map[catalog.MagnitudeClass]string{
	catalog.MagnitudeLow:     "#FFFFFF",
	catalog.MagnitudeMidLow:  "#C8D7FF",
	catalog.MagnitudeMidHigh: "#8A9BD8",
	catalog.MagnitudeHigh:    "#5A6491",
	catalog.MagnitudeUnknown: "#444444",
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent)).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
)

const ruleWidth = 86

// TableOptions controls which rows are shown and how.
type TableOptions struct {
	Sort        catalog.SortOrder
	VisibleOnly bool
	MinAltitude float64
	Offset      int // first row shown
	Limit       int // rows shown, 0 for all
}

// Rows returns the positions to display, sorted and filtered, without
// modifying the snapshot.
func Rows(snap state.Snapshot, opts TableOptions) []catalog.Position {
	rows := make([]catalog.Position, len(snap.Positions))
	copy(rows, snap.Positions)
	if opts.VisibleOnly {
		rows = catalog.FilterVisible(rows, opts.MinAltitude)
	}
	catalog.Sort(rows, opts.Sort)
	return rows
}

// RenderHeader renders the observer, time and sky darkness line.
func RenderHeader(snap state.Snapshot) string {
	site := snap.Observer.Name
	if site == "" {
		site = "observer"
	}
	where := fmt.Sprintf("%s %s %s", site, formatLat(snap.Observer.LatDeg), formatLon(snap.Observer.LonDeg))

	sun := fmt.Sprintf("Sun %+.1f° %s", snap.SunAltDeg, snap.Phase)
	if snap.SunErr != nil {
		sun = errorStyle.Render("Sun: " + snap.SunErr.Error())
	}

	return headerStyle.Render("Messier @ "+snap.Time.UTC().Format(time.RFC3339)) +
		"  " + mutedStyle.Render(where) + "  " + sun
}

// RenderTable renders the position table.
func RenderTable(snap state.Snapshot, opts TableOptions) string {
	rows := Rows(snap, opts)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-5s %-24s %-18s %-12s %5s %7s %7s %6s %s",
		"ID", "Name", "Type", "Const", "Mag", "Alt", "Az", "Sun", "Elev")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", ruleWidth)))
	b.WriteString("\n")

	if len(rows) == 0 {
		msg := "No objects"
		if opts.VisibleOnly {
			msg = fmt.Sprintf("No objects above %.0f°", opts.MinAltitude)
		}
		b.WriteString(mutedStyle.Render(msg))
		b.WriteString("\n")
		return b.String()
	}

	start := clamp(opts.Offset, 0, len(rows))
	end := len(rows)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	for _, p := range rows[start:end] {
		b.WriteString(renderRow(p))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(p catalog.Position) string {
	o := p.Object
	mag := lipgloss.NewStyle().
		Foreground(lipgloss.Color(magnitudeColors[catalog.ClassifyMagnitude(o.Magnitude)])).
		Render(fmt.Sprintf("%5.1f", o.Magnitude))

	left := fmt.Sprintf("%-5s %-24s %-18s %-12s ",
		o.ID(), truncateStr(o.Name, 24), truncateStr(string(o.Type), 18), truncateStr(o.Constellation, 12))

	if p.Err != nil {
		return left + mag + " " + errorStyle.Render(p.Err.Error())
	}

	tier := p.Tier()
	alt := lipgloss.NewStyle().Foreground(lipgloss.Color(tierToColor(tier))).
		Render(fmt.Sprintf("%+6.1f°", p.AltDeg))
	az := fmt.Sprintf("%6.1f°", p.AzDeg)
	if !p.AzDefined {
		az = fmt.Sprintf("%7s", "--")
	}
	sun := lipgloss.NewStyle().Foreground(lipgloss.Color(sunSepColor(p.SunSepDeg))).
		Render(fmt.Sprintf("%5.0f°", p.SunSepDeg))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(tierToColor(tier))).Render(tierToBar(tier))

	return left + mag + " " + alt + " " + az + " " + sun + " " + bar
}

// RenderObject renders a detail card for one object. win may be nil.
func RenderObject(p catalog.Position, win *astro.VisibilityWindow) string {
	o := p.Object
	var b strings.Builder

	b.WriteString(headerStyle.Render(o.Title()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-14s %s in %s\n", "Type", o.Type, o.Constellation)
	fmt.Fprintf(&b, "  %-14s %.1f (%s)\n", "Magnitude", o.Magnitude, catalog.ClassifyMagnitude(o.Magnitude))
	fmt.Fprintf(&b, "  %-14s %.3f°  %+.3f°\n", "RA / Dec", o.RAdeg, o.DecDeg)

	if p.Err != nil {
		fmt.Fprintf(&b, "  %-14s %s\n", "Position", errorStyle.Render(p.Err.Error()))
		return b.String()
	}

	fmt.Fprintf(&b, "  %-14s %+.2f°\n", "Altitude", p.AltDeg)
	if p.AzDefined {
		fmt.Fprintf(&b, "  %-14s %.2f°\n", "Azimuth", p.AzDeg)
	} else {
		fmt.Fprintf(&b, "  %-14s undefined\n", "Azimuth")
	}
	fmt.Fprintf(&b, "  %-14s %.1f°\n", "Sun distance", p.SunSepDeg)

	if win != nil && win.Valid {
		switch {
		case win.AlwaysVisible:
			fmt.Fprintf(&b, "  %-14s never sets, peak %.1f° at %s\n", "Visibility",
				win.MaxElevation, win.Transit.UTC().Format("15:04"))
		case win.NeverVisible:
			fmt.Fprintf(&b, "  %-14s never rises (peak %.1f°)\n", "Visibility", win.MaxElevation)
		default:
			fmt.Fprintf(&b, "  %-14s rise %s  peak %s @ %.0f°  set %s\n", "Visibility",
				formatClock(win.Rise), formatClock(win.Transit), win.MaxElevation, formatClock(win.Set))
		}
	}
	return b.String()
}

// RenderEvents renders the last n events, oldest first.
func RenderEvents(events []state.Event, n int) string {
	if len(events) == 0 {
		return mutedStyle.Render("No events")
	}
	if len(events) > n {
		events = events[len(events)-n:]
	}

	var lines []string
	for _, e := range events {
		subject := e.Object
		if e.Type == state.EventTwilight {
			subject = e.Phase
		}
		lines = append(lines, fmt.Sprintf("%s %-8s %s", e.Timestamp.UTC().Format("15:04:05"), e.Type, subject))
	}
	return strings.Join(lines, "\n")
}

// WriteSummary writes the header and full table to w.
func WriteSummary(w io.Writer, snap state.Snapshot, opts TableOptions) {
	fmt.Fprintln(w, RenderHeader(snap))
	fmt.Fprint(w, RenderTable(snap, opts))

	rows := Rows(snap, opts)
	visible := len(catalog.FilterVisible(rows, opts.MinAltitude))
	fmt.Fprintf(w, "\nShown: %d objects, %d above %.0f°\n", len(rows), visible, opts.MinAltitude)
}

func tierToBar(tier astro.ElevationTier) string {
	switch tier {
	case astro.ElevationHigh:
		return "████"
	case astro.ElevationMedium:
		return "██░░"
	case astro.ElevationLow:
		return "█░░░"
	default:
		return "░░░░"
	}
}

func tierToColor(tier astro.ElevationTier) string {
	switch tier {
	case astro.ElevationHigh:
		return colorVisHigh
	case astro.ElevationMedium:
		return colorVisMedium
	case astro.ElevationLow:
		return colorVisLow
	default:
		return colorVisNone
	}
}

func sunSepColor(sepDeg float64) string {
	switch astro.GetSunSeparationTier(sepDeg) {
	case astro.SunSepWarning:
		return colorSunWarning
	case astro.SunSepCaution:
		return colorSunCaution
	default:
		return colorSunSafe
	}
}

func formatLat(lat float64) string {
	if lat < 0 {
		return fmt.Sprintf("%.4f°S", -lat)
	}
	return fmt.Sprintf("%.4f°N", lat)
}

func formatLon(lon float64) string {
	if lon < 0 {
		return fmt.Sprintf("%.4f°W", -lon)
	}
	return fmt.Sprintf("%.4f°E", lon)
}

func formatClock(t time.Time) string {
	if t.IsZero() {
		return "--:--"
	}
	return t.UTC().Format("15:04")
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
