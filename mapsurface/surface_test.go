package mapsurface

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directions-viewer/entities"
)

type fakeOverlay struct{}

func (fakeOverlay) Bound() orb.Bound { return orb.Bound{} }

type polylineOnly struct{}

func (polylineOnly) RendererFor(o Overlay) (Renderer, bool) {
	if _, ok := o.(*Polyline); ok {
		return PolylineRenderer{StrokeColor: "#0000FF", LineWidth: 5}, true
	}
	return nil, false
}

func TestSetRegionBound(t *testing.T) {
	s := New(10, 10)
	s.SetRegion(entities.Coordinate{Lat: 40.71, Lng: -74}, Span{LatDelta: 0.5, LngDelta: 0.5})

	b := s.Region().Bound()
	assert.InDelta(t, -74.25, b.Min.X(), 1e-9)
	assert.InDelta(t, 40.96, b.Max.Y(), 1e-9)
}

func TestSetVisibleBoundPadding(t *testing.T) {
	s := New(100, 50)
	b := orb.Bound{Min: orb.Point{-74, 40.71}, Max: orb.Point{-71.05, 42.36}}
	s.SetVisibleBound(b, UniformInsets(10))

	r := s.Region().Bound()
	assert.Less(t, r.Min.X(), b.Min.X())
	assert.Greater(t, r.Max.X(), b.Max.X())
	assert.Less(t, r.Min.Y(), b.Min.Y())
	assert.Greater(t, r.Max.Y(), b.Max.Y())

	// The fitted bound starts at the padding edge.
	c := s.Draw()
	col, row, in := c.Project(b.Min)
	require.True(t, in)
	assert.InDelta(t, 10, col, 1)
	assert.InDelta(t, 40, row, 1)
}

func TestSetVisibleBoundDegenerate(t *testing.T) {
	s := New(20, 20)
	p := orb.Point{-74, 40.71}
	s.SetVisibleBound(orb.Bound{Min: p, Max: p}, UniformInsets(2))

	r := s.Region()
	assert.Greater(t, r.Span.LatDelta, 0.0)
	assert.Greater(t, r.Span.LngDelta, 0.0)
	assert.InDelta(t, 40.71, r.Center.Lat, 1e-9)
}

func TestDrawPolylineAndAnnotations(t *testing.T) {
	s := New(40, 20)
	s.SetDelegate(polylineOnly{})
	src := entities.Coordinate{Lat: 40.71, Lng: -74}
	dst := entities.Coordinate{Lat: 42.36, Lng: -71.05}
	line := NewPolyline([]entities.Coordinate{src, dst})
	s.AddOverlay(line)
	s.AddAnnotations(Annotation{Title: "NYC", Coordinate: src}, Annotation{Title: "Boston", Coordinate: dst})
	s.SetVisibleBound(line.Bound(), UniformInsets(2))

	c := s.Draw()
	col, row, in := c.Project(orb.Point{src.Lng, src.Lat})
	require.True(t, in)
	assert.Equal(t, markerGlyph, c.At(col, row).Glyph)

	stroked := 0
	for r := 0; r < 20; r++ {
		for cl := 0; cl < 40; cl++ {
			if cell := c.At(cl, r); cell.Glyph == '█' {
				assert.Equal(t, "#0000FF", cell.Color)
				stroked++
			}
		}
	}
	assert.Greater(t, stroked, 30)

	out := s.Render()
	assert.Contains(t, out, "█")
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}

func TestDrawSkipsUnhandledOverlay(t *testing.T) {
	s := New(5, 5)
	s.SetRegion(entities.Coordinate{}, Span{LatDelta: 1, LngDelta: 1})
	s.SetDelegate(polylineOnly{})
	s.AddOverlay(fakeOverlay{})

	assert.NotPanics(t, func() { s.Draw() })
	assert.Len(t, s.Overlays(), 1)
}

func TestDrawWithoutDelegate(t *testing.T) {
	s := New(5, 5)
	s.SetRegion(entities.Coordinate{}, Span{LatDelta: 1, LngDelta: 1})
	s.AddOverlay(NewPolyline([]entities.Coordinate{{Lat: -0.4, Lng: -0.4}, {Lat: 0.4, Lng: 0.4}}))

	out := s.Render()
	assert.NotContains(t, out, "█")
}

func TestPolylineCoordinatesRoundTrip(t *testing.T) {
	in := []entities.Coordinate{{Lat: 40.71, Lng: -74}, {Lat: 42.36, Lng: -71.05}}
	assert.Equal(t, in, NewPolyline(in).Coordinates())
}
