package mapview

import "directions-viewer/mapsurface"

// Coordinator is the surface delegate. It only knows how to stroke route
// polylines.
type Coordinator struct {
	StrokeColor string
	LineWidth   float64
}

func (c Coordinator) RendererFor(o mapsurface.Overlay) (mapsurface.Renderer, bool) {
	switch o.(type) {
	case *mapsurface.Polyline:
		return mapsurface.PolylineRenderer{StrokeColor: c.StrokeColor, LineWidth: c.LineWidth}, true
	default:
		return nil, false
	}
}
