package mapsurface

import (
	"github.com/paulmach/orb"

	"directions-viewer/entities"
)

type Overlay interface {
	Bound() orb.Bound
}

// Polyline is a route geometry overlay.
type Polyline struct {
	Line orb.LineString
}

func NewPolyline(coords []entities.Coordinate) *Polyline {
	ls := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		ls = append(ls, orb.Point{c.Lng, c.Lat})
	}
	return &Polyline{Line: ls}
}

func (p *Polyline) Bound() orb.Bound { return p.Line.Bound() }

// Coordinates returns the geometry back as latitude/longitude pairs.
func (p *Polyline) Coordinates() []entities.Coordinate {
	out := make([]entities.Coordinate, 0, len(p.Line))
	for _, pt := range p.Line {
		out = append(out, entities.Coordinate{Lat: pt.Lat(), Lng: pt.Lon()})
	}
	return out
}

// Renderer draws one overlay onto a canvas.
type Renderer interface {
	Draw(c *Canvas, o Overlay)
}

// PolylineRenderer strokes a Polyline with a single color and width.
type PolylineRenderer struct {
	StrokeColor string
	LineWidth   float64
}

func (r PolylineRenderer) Draw(c *Canvas, o Overlay) {
	p, ok := o.(*Polyline)
	if !ok || len(p.Line) == 0 {
		return
	}
	glyph := '·'
	if r.LineWidth >= 3 {
		glyph = '█'
	} else if r.LineWidth >= 1.5 {
		glyph = '•'
	}

	prevCol, prevRow, prevIn := c.Project(p.Line[0])
	if len(p.Line) == 1 && prevIn {
		c.Set(prevCol, prevRow, glyph, r.StrokeColor)
		return
	}
	for _, pt := range p.Line[1:] {
		col, row, in := c.Project(pt)
		if prevIn || in {
			c.Line(prevCol, prevRow, col, row, glyph, r.StrokeColor)
		}
		prevCol, prevRow, prevIn = col, row, in
	}
}
