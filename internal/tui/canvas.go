package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitrace/internal/difficulty"
	"github.com/verte-zerg/tuitrace/internal/strokes"
	"github.com/verte-zerg/tuitrace/internal/tracing"
)

const (
	minCanvasRows = 6
	maxCanvasRows = 30
)

// canvasLayout maps terminal cells onto the square tracing canvas. A cell is
// about twice as tall as it is wide, so the canvas is twice as many columns
// as rows. Each cell holds a 2x4 braille dot grid, which makes the dot grid
// square as well.
type canvasLayout struct {
	originX int
	originY int
	cols    int
	rows    int
	size    float64
}

func newCanvasLayout(width, height, top, reserved int, size float64) canvasLayout {
	rows := height - top - reserved
	if byWidth := (width - 2) / 2; byWidth < rows {
		rows = byWidth
	}
	if rows > maxCanvasRows {
		rows = maxCanvasRows
	}
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	cols := rows * 2
	originX := (width - cols) / 2
	if originX < 0 {
		originX = 0
	}
	return canvasLayout{originX: originX, originY: top, cols: cols, rows: rows, size: size}
}

func (c canvasLayout) contains(x, y int) bool {
	return x >= c.originX && x < c.originX+c.cols && y >= c.originY && y < c.originY+c.rows
}

// toPixel converts a terminal cell to the canvas pixel at its center. Cells
// outside the canvas are clamped to its edge.
func (c canvasLayout) toPixel(x, y int) (float64, float64) {
	col := clampInt(x-c.originX, 0, c.cols-1)
	row := clampInt(y-c.originY, 0, c.rows-1)
	px := (float64(col) + 0.5) / float64(c.cols) * c.size
	py := (float64(row) + 0.5) / float64(c.rows) * c.size
	return px, py
}

// cellReach is the farthest a canvas point can be from the nearest cell
// center, half a cell diagonal, in canvas pixels. Presses only ever land on
// cell centers.
func (c canvasLayout) cellReach() float64 {
	return math.Hypot(c.size/float64(c.cols)/2, c.size/float64(c.rows)/2)
}

// reachable reports whether every checkpoint can be hit from some cell with
// the given tolerance radius.
func (c canvasLayout) reachable(radius float64) bool {
	return c.cellReach() <= radius
}

// rowsNeeded is the fewest canvas rows at which radius covers every point of
// a size-pixel canvas, given cols = 2*rows.
func rowsNeeded(size, radius float64) int {
	if radius <= 0 {
		return math.MaxInt
	}
	return int(math.Ceil(size * math.Hypot(0.25, 0.5) / radius))
}

func (c canvasLayout) dots() int {
	return c.rows * 4
}

// toDot converts a normalized point to braille dot coordinates.
func (c canvasLayout) toDot(x, y float64) (int, int) {
	n := c.dots()
	return clampInt(int(x*float64(n)), 0, n-1), clampInt(int(y*float64(n)), 0, n-1)
}

func (c canvasLayout) cellOf(cp strokes.Checkpoint) (int, int) {
	dx, dy := c.toDot(cp.X, cp.Y)
	return dx / 2, dy / 4
}

// brushFor converts a stroke width in canvas pixels to a brush radius in dots.
func (c canvasLayout) brushFor(width float64) int {
	if c.size <= 0 {
		return 0
	}
	dotSize := c.size / float64(c.dots())
	return int(width / dotSize / 2)
}

type marker int

const (
	markerNone marker = iota
	markerPending
	markerReached
	markerNext
)

var (
	guideStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	inkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	nextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	reachedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

var markerGlyphs = map[marker]string{
	markerPending: "○",
	markerReached: "●",
	markerNext:    "◎",
}

// renderCanvas draws the letter guide, the ink trail and the checkpoint
// markers. inkStarts holds the trail indices where the pointer went down.
func renderCanvas(layout canvasLayout, e *tracing.Engine, inkStarts []int) []string {
	guide := newRaster(layout.cols, layout.rows)
	ink := newRaster(layout.cols, layout.rows)
	markers := map[[2]int]marker{}

	cfg := e.Config()
	if letter := e.Letter(); letter != nil {
		for i, s := range letter.Strokes {
			for j, c := range s {
				if j > 0 {
					x0, y0 := layout.toDot(s[j-1].X, s[j-1].Y)
					x1, y1 := layout.toDot(c.X, c.Y)
					guide.line(x0, y0, x1, y1, 0)
				}
				cx, cy := layout.cellOf(c)
				cell := [2]int{cx, cy}
				if mk := checkpointMarker(e, cfg, i, j); mk > markers[cell] {
					markers[cell] = mk
				}
			}
		}
	}

	brush := layout.brushFor(cfg.StrokeWidth)
	points := e.DrawnPoints()
	starts := map[int]bool{}
	for _, idx := range inkStarts {
		starts[idx] = true
	}
	for i, p := range points {
		x1, y1 := layout.toDot(p.X, p.Y)
		if i == 0 || starts[i] {
			ink.line(x1, y1, x1, y1, brush)
			continue
		}
		x0, y0 := layout.toDot(points[i-1].X, points[i-1].Y)
		ink.line(x0, y0, x1, y1, brush)
	}

	pad := strings.Repeat(" ", layout.originX)
	lines := make([]string, layout.rows)
	for y := 0; y < layout.rows; y++ {
		var b strings.Builder
		b.WriteString(pad)
		for x := 0; x < layout.cols; x++ {
			b.WriteString(renderCell(markers[[2]int{x, y}], ink[y][x], guide[y][x]))
		}
		lines[y] = b.String()
	}
	return lines
}

func checkpointMarker(e *tracing.Engine, cfg difficulty.Config, stroke, checkpoint int) marker {
	cur, next := e.CurrentStroke(), e.CurrentCheckpoint()
	reached := e.IsComplete() || stroke < cur || (stroke == cur && checkpoint < next)
	switch {
	case reached:
		return markerReached
	case stroke == cur && checkpoint == next && cfg.ShowNextCheckpoint:
		return markerNext
	case cfg.ShowAllCheckpoints:
		return markerPending
	default:
		return markerNone
	}
}

func renderCell(mk marker, inkMask, guideMask uint8) string {
	switch {
	case mk == markerNext:
		return nextStyle.Render(markerGlyphs[mk])
	case mk == markerReached:
		return reachedStyle.Render(markerGlyphs[mk])
	case inkMask != 0:
		return inkStyle.Render(string(brailleFromMask(inkMask | guideMask)))
	case mk == markerPending:
		return pendingStyle.Render(markerGlyphs[mk])
	case guideMask != 0:
		return guideStyle.Render(string(brailleFromMask(guideMask)))
	default:
		return " "
	}
}

// raster is a grid of braille cells, each a bit mask of its 2x4 dots.
type raster [][]uint8

func newRaster(cols, rows int) raster {
	r := make(raster, rows)
	for y := range r {
		r[y] = make([]uint8, cols)
	}
	return r
}

func (r raster) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cellY, cellX := y/4, x/2
	if cellY >= len(r) || cellX >= len(r[cellY]) {
		return
	}
	r[cellY][cellX] |= brailleDotMask(x%2, y%4)
}

// line plots a Bresenham line, stamping a square brush of the given radius
// at every step.
func (r raster) line(x0, y0, x1, y1, brush int) {
	plot := func(x, y int) {
		for dy := -brush; dy <= brush; dy++ {
			for dx := -brush; dx <= brush; dx++ {
				r.set(x+dx, y+dy)
			}
		}
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// brailleDotMask returns the Unicode braille bit for the dot at column x
// (0-1) and row y (0-3) of a cell.
func brailleDotMask(x, y int) uint8 {
	if x == 0 {
		return [4]uint8{0x01, 0x02, 0x04, 0x40}[y]
	}
	return [4]uint8{0x08, 0x10, 0x20, 0x80}[y]
}

func brailleFromMask(mask uint8) rune {
	return rune(0x2800 + int(mask))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
