// Package snapshot renders a map surface to a PNG with OpenStreetMap tiles.
package snapshot

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	sm "github.com/flopp/go-staticmaps"
	"github.com/golang/geo/s2"
	"github.com/lucasb-eyer/go-colorful"

	"directions-viewer/entities"
	"directions-viewer/mapsurface"
)

var markerColor = color.RGBA{R: 0xff, A: 0xff}

const markerSize = 16.0

func latLng(c entities.Coordinate) s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

// ParseColor accepts "#rrggbb" hex colors.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Objects converts the surface contents into static map objects. Overlays
// are styled through the surface delegate and skipped when it declines them.
func Objects(s *mapsurface.Surface) ([]sm.MapObject, error) {
	var objs []sm.MapObject
	if d := s.Delegate(); d != nil {
		for _, o := range s.Overlays() {
			r, ok := d.RendererFor(o)
			if !ok {
				continue
			}
			pr, ok := r.(mapsurface.PolylineRenderer)
			if !ok {
				continue
			}
			line, ok := o.(*mapsurface.Polyline)
			if !ok {
				continue
			}
			col, err := ParseColor(pr.StrokeColor)
			if err != nil {
				return nil, err
			}
			positions := make([]s2.LatLng, 0, len(line.Line))
			for _, c := range line.Coordinates() {
				positions = append(positions, latLng(c))
			}
			objs = append(objs, sm.NewPath(positions, col, pr.LineWidth))
		}
	}
	for _, a := range s.Annotations() {
		objs = append(objs, sm.NewMarker(latLng(a.Coordinate), markerColor, markerSize))
	}
	return objs, nil
}

// Write renders the surface at width x height pixels into path.
func Write(s *mapsurface.Surface, path string, width, height int) error {
	objs, err := Objects(s)
	if err != nil {
		return err
	}

	ctx := sm.NewContext()
	ctx.SetSize(width, height)
	ctx.SetTileProvider(sm.NewTileProviderOpenStreetMaps())
	for _, o := range objs {
		ctx.AddObject(o)
	}
	if len(objs) == 0 {
		r := s.Region().Bound()
		ctx.SetBoundingBox(s2.RectFromLatLng(s2.LatLngFromDegrees(r.Min.Y(), r.Min.X())).
			AddPoint(s2.LatLngFromDegrees(r.Max.Y(), r.Max.X())))
	}

	img, err := ctx.Render()
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
