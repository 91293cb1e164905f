// Package mapsurface models a map control: a visible region, point
// annotations and line overlays, plus a delegate that decides how each
// overlay is stroked. Render draws the surface onto a character canvas.
package mapsurface

import (
	"math"

	"github.com/paulmach/orb"

	"directions-viewer/entities"
)

// Span is the size of the visible region in degrees.
type Span struct {
	LatDelta float64
	LngDelta float64
}

type Region struct {
	Center entities.Coordinate
	Span   Span
}

// Bound returns the region as an orb bound (X = longitude, Y = latitude).
func (r Region) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.Center.Lng - r.Span.LngDelta/2, r.Center.Lat - r.Span.LatDelta/2},
		Max: orb.Point{r.Center.Lng + r.Span.LngDelta/2, r.Center.Lat + r.Span.LatDelta/2},
	}
}

// EdgeInsets is padding in canvas cells.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

func UniformInsets(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

type Annotation struct {
	Title      string
	Coordinate entities.Coordinate
}

// Delegate produces a renderer for an overlay. ok is false for overlay kinds
// the delegate does not handle; such overlays are not drawn.
type Delegate interface {
	RendererFor(o Overlay) (r Renderer, ok bool)
}

type Surface struct {
	width, height int
	region        Region
	annotations   []Annotation
	overlays      []Overlay
	delegate      Delegate
}

// New returns a surface drawing onto a width x height cell canvas.
func New(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.width, s.height = width, height
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) SetDelegate(d Delegate) { s.delegate = d }
func (s *Surface) Delegate() Delegate     { return s.delegate }

func (s *Surface) SetRegion(center entities.Coordinate, span Span) {
	s.region = Region{Center: center, Span: span}
}

func (s *Surface) Region() Region { return s.region }

// SetVisibleBound fits the region to b, leaving padding cells free on each
// edge of the canvas.
func (s *Surface) SetVisibleBound(b orb.Bound, padding EdgeInsets) {
	innerW := float64(s.width) - padding.Left - padding.Right
	innerH := float64(s.height) - padding.Top - padding.Bottom
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	lngDelta := b.Max.X() - b.Min.X()
	latDelta := b.Max.Y() - b.Min.Y()
	if lngDelta <= 0 {
		lngDelta = minSpan
	}
	if latDelta <= 0 {
		latDelta = minSpan
	}

	degPerCol := lngDelta / innerW
	degPerRow := latDelta / innerH

	minLng := b.Min.X() - padding.Left*degPerCol
	maxLng := b.Max.X() + padding.Right*degPerCol
	minLat := b.Min.Y() - padding.Bottom*degPerRow
	maxLat := b.Max.Y() + padding.Top*degPerRow

	s.region = Region{
		Center: entities.Coordinate{Lat: (minLat + maxLat) / 2, Lng: (minLng + maxLng) / 2},
		Span:   Span{LatDelta: math.Abs(maxLat - minLat), LngDelta: math.Abs(maxLng - minLng)},
	}
}

const minSpan = 0.001

func (s *Surface) AddAnnotations(as ...Annotation) {
	s.annotations = append(s.annotations, as...)
}

func (s *Surface) Annotations() []Annotation {
	out := make([]Annotation, len(s.annotations))
	copy(out, s.annotations)
	return out
}

func (s *Surface) AddOverlay(o Overlay) {
	s.overlays = append(s.overlays, o)
}

func (s *Surface) Overlays() []Overlay {
	out := make([]Overlay, len(s.overlays))
	copy(out, s.overlays)
	return out
}
