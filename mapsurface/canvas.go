package mapsurface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
)

const (
	markerGlyph = '●'
	markerColor = "#FF0000"
	emptyGlyph  = ' '
)

type Cell struct {
	Glyph rune
	Color string
}

// Canvas is a grid of cells covering a geographic bound. Row 0 is north.
type Canvas struct {
	width, height int
	bound         orb.Bound
	cells         []Cell
}

func NewCanvas(width, height int, bound orb.Bound) *Canvas {
	c := &Canvas{width: width, height: height, bound: bound, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i].Glyph = emptyGlyph
	}
	return c
}

// Project maps a point to a cell. in is false when the point falls outside
// the canvas; col and row are still returned so lines can be clipped.
func (c *Canvas) Project(p orb.Point) (col, row int, in bool) {
	w := c.bound.Max.X() - c.bound.Min.X()
	h := c.bound.Max.Y() - c.bound.Min.Y()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	fx := (p.X() - c.bound.Min.X()) / w
	fy := (c.bound.Max.Y() - p.Y()) / h
	col = int(math.Floor(fx * float64(c.width)))
	row = int(math.Floor(fy * float64(c.height)))
	return col, row, c.inside(col, row)
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.width && row >= 0 && row < c.height
}

// Set writes a cell; out of range writes are dropped.
func (c *Canvas) Set(col, row int, glyph rune, color string) {
	if !c.inside(col, row) {
		return
	}
	c.cells[row*c.width+col] = Cell{Glyph: glyph, Color: color}
}

func (c *Canvas) At(col, row int) Cell {
	if !c.inside(col, row) {
		return Cell{Glyph: emptyGlyph}
	}
	return c.cells[row*c.width+col]
}

// Line draws a Bresenham line between two cells.
func (c *Canvas) Line(x0, y0, x1, y1 int, glyph rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(x0, y0, glyph, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the canvas with lipgloss, one style per run of same-colored
// cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < c.width; col++ {
			cell := c.cells[row*c.width+col]
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Glyph)
		}
		flush()
	}
	return b.String()
}

// Draw paints overlays through the delegate, then annotations on top.
func (s *Surface) Draw() *Canvas {
	c := NewCanvas(s.width, s.height, s.region.Bound())
	if s.delegate != nil {
		for _, o := range s.overlays {
			r, ok := s.delegate.RendererFor(o)
			if !ok || r == nil {
				continue
			}
			r.Draw(c, o)
		}
	}
	for _, a := range s.annotations {
		col, row, in := c.Project(orb.Point{a.Coordinate.Lng, a.Coordinate.Lat})
		if in {
			c.Set(col, row, markerGlyph, markerColor)
		}
	}
	return c
}

func (s *Surface) Render() string {
	return s.Draw().String()
}
