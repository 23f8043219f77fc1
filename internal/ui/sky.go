package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-messier/internal/catalog"
	"github.com/litescript/ls-messier/internal/state"
)

// Sky glyphs
const (
	glyphStarBright  = '*'
	glyphStarMedium  = '+'
	glyphStarDim     = '.'
	glyphObjectLow   = '◉'
	glyphObjectMid   = '●'
	glyphObjectFaint = '•'
	glyphHorizon     = '─'
)

// Sky colors
const (
	colorSkyBackground = "236"
	colorStarBright    = "252"
	colorStarMedium    = "246"
	colorStarDim       = "240"
	colorCardinal      = "252"
	colorLabel         = "#C77DFF"
)

// RenderSky draws the whole sky above the horizon on a width x height canvas.
// Azimuth runs left to right from north through east, south and west; the
// top row is the zenith. Objects whose azimuth is undefined sit on the center
// column.
func RenderSky(snap state.Snapshot, width, height int) string {
	if width < 8 || height < 4 {
		return ""
	}

	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorSkyBackground
		}
	}

	horizonY := height - 2

	for _, s := range snap.Stars {
		x, y, ok := projectToScreen(s.AzDeg, s.AltDeg, s.AzDefined, width, horizonY)
		if !ok {
			continue
		}
		glyph, color := starGlyph(s.Star.Mag)
		canvas[y][x] = glyph
		colors[y][x] = color
	}

	for x := 0; x < width; x++ {
		canvas[horizonY][x] = glyphHorizon
		colors[horizonY][x] = colorMuted
	}
	drawCardinal(canvas, colors, width, horizonY, "N", 0)
	drawCardinal(canvas, colors, width, horizonY, "E", 90)
	drawCardinal(canvas, colors, width, horizonY, "S", 180)
	drawCardinal(canvas, colors, width, horizonY, "W", 270)

	// Brightest objects last so they win shared cells.
	objs := make([]catalog.Position, 0, len(snap.Positions))
	for _, p := range snap.Positions {
		if p.Err == nil {
			objs = append(objs, p)
		}
	}
	sortByMagnitudeDesc(objs)

	for _, p := range objs {
		x, y, ok := projectToScreen(p.AzDeg, p.AltDeg, p.AzDefined, width, horizonY)
		if !ok {
			continue
		}
		class := catalog.ClassifyMagnitude(p.Object.Magnitude)
		canvas[y][x] = objectGlyph(class)
		colors[y][x] = lipgloss.Color(magnitudeColors[class])
		drawLabel(canvas, colors, x+1, y, p.Object.ID())
	}

	// Observer marker at bottom center
	canvas[height-1][width/2] = '▲'
	colors[height-1][width/2] = "46"

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x])
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// projectToScreen maps altitude/azimuth to a cell above the horizon row.
func projectToScreen(az, alt float64, azDefined bool, width, horizonY int) (int, int, bool) {
	if alt <= 0 {
		return 0, 0, false
	}
	x := width / 2
	if azDefined {
		x = int(az / 360 * float64(width))
	}
	y := int((90 - alt) / 90 * float64(horizonY))
	if x < 0 || x >= width || y < 0 || y >= horizonY {
		return 0, 0, false
	}
	return x, y, true
}

func drawCardinal(canvas [][]rune, colors [][]lipgloss.Color, width, horizonY int, label string, az float64) {
	x := int(az / 360 * float64(width))
	if x >= 0 && x < width {
		canvas[horizonY][x] = rune(label[0])
		colors[horizonY][x] = colorCardinal
	}
}

// drawLabel writes text starting at (x, y) if every cell is empty.
func drawLabel(canvas [][]rune, colors [][]lipgloss.Color, x, y int, text string) {
	row := canvas[y]
	if x < 0 || x+len(text) > len(row) {
		return
	}
	for i := range text {
		if row[x+i] != ' ' {
			return
		}
	}
	for i, r := range text {
		row[x+i] = r
		colors[y][x+i] = colorLabel
	}
}

func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.0:
		return glyphStarBright, colorStarBright
	case mag < 2.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func objectGlyph(class catalog.MagnitudeClass) rune {
	switch class {
	case catalog.MagnitudeLow, catalog.MagnitudeMidLow:
		return glyphObjectLow
	case catalog.MagnitudeMidHigh:
		return glyphObjectMid
	default:
		return glyphObjectFaint
	}
}

func sortByMagnitudeDesc(ps []catalog.Position) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Object.Magnitude > ps[j].Object.Magnitude
	})
}
