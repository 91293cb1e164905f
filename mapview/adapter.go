// Package mapview binds a map surface to the shared directions state. The
// adapter issues a single route request when mounted and publishes the
// first route onto the surface and into the state.
package mapview

import (
	"context"
	"log/slog"
	"time"

	"github.com/paulmach/orb"

	"directions-viewer/directions"
	"directions-viewer/entities"
	"directions-viewer/mapsurface"
	"directions-viewer/provider"
)

type Config struct {
	Source      entities.Placemark
	Destination entities.Placemark
	Transport   entities.TransportMode

	Center      entities.Coordinate
	Span        mapsurface.Span
	EdgePadding float64

	StrokeColor string
	LineWidth   float64

	// Timeout bounds the route request. Zero waits forever.
	Timeout time.Duration
}

// DefaultConfig routes from New York City to Boston by car.
func DefaultConfig() Config {
	return Config{
		Source:      entities.Placemark{Name: "New York City", Coordinate: entities.Coordinate{Lat: 40.71, Lng: -74.00}},
		Destination: entities.Placemark{Name: "Boston", Coordinate: entities.Coordinate{Lat: 42.36, Lng: -71.05}},
		Transport:   entities.TransportAutomobile,
		Center:      entities.Coordinate{Lat: 40.71, Lng: -74.00},
		Span:        mapsurface.Span{LatDelta: 0.5, LngDelta: 0.5},
		EdgePadding: 2,
		StrokeColor: "#0000FF",
		LineWidth:   5,
		Timeout:     30 * time.Second,
	}
}

// Result is the outcome of one route request.
type Result struct {
	Request entities.RouteRequest
	Routes  []entities.Route
	Err     error
	Elapsed time.Duration
}

type Option func(*Adapter)

// WithGeocoder names unnamed placemarks before they are annotated.
func WithGeocoder(g provider.Geocoder) Option {
	return func(a *Adapter) { a.geocoder = g }
}

// WithObserver registers a callback run on every applied result.
func WithObserver(fn func(Result)) Option {
	return func(a *Adapter) { a.observers = append(a.observers, fn) }
}

func WithSurfaceSize(width, height int) Option {
	return func(a *Adapter) { a.surface.Resize(width, height) }
}

type Adapter struct {
	cfg       Config
	surface   *mapsurface.Surface
	state     *directions.State
	routes    provider.RouteProvider
	geocoder  provider.Geocoder
	observers []func(Result)

	mounted bool
	applied bool

	// fitted is the route bound the region was last fitted to.
	fitted    orb.Bound
	hasFitted bool
}

// New configures the surface. It does not talk to the provider; call Mount.
func New(cfg Config, state *directions.State, routes provider.RouteProvider, opts ...Option) *Adapter {
	a := &Adapter{
		cfg:     cfg,
		surface: mapsurface.New(80, 20),
		state:   state,
		routes:  routes,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.surface.SetRegion(cfg.Center, cfg.Span)
	a.surface.SetDelegate(Coordinator{StrokeColor: cfg.StrokeColor, LineWidth: cfg.LineWidth})
	return a
}

func (a *Adapter) Surface() *mapsurface.Surface { return a.surface }

func (a *Adapter) Request() entities.RouteRequest {
	return entities.RouteRequest{
		Source:      a.cfg.Source,
		Destination: a.cfg.Destination,
		Transport:   a.cfg.Transport,
	}
}

// Mount reports whether the caller should start Fetch. Only the first call
// on an adapter returns true.
func (a *Adapter) Mount() bool {
	if a.mounted {
		return false
	}
	a.mounted = true
	a.state.MarkLoading()
	return true
}

// Update is called when the host view re-renders. Nothing to refresh.
func (a *Adapter) Update() {}

// Fetch performs the route request. It blocks and must not touch the
// surface or the state, so it is safe to run off the UI goroutine.
func (a *Adapter) Fetch(ctx context.Context) Result {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	req := a.Request()
	start := time.Now()
	routes, err := a.routes.Routes(ctx, req)
	res := Result{Request: req, Routes: routes, Err: err}
	if err == nil && len(routes) == 0 {
		res.Err = provider.ErrNoRoutes
	}

	if res.Err == nil && a.geocoder != nil {
		res.Request.Source = a.name(ctx, res.Request.Source)
		res.Request.Destination = a.name(ctx, res.Request.Destination)
	}
	res.Elapsed = time.Since(start)
	return res
}

// name replaces the configured name with the geocoded one. The configured
// name stays when the geocoder fails or finds nothing.
func (a *Adapter) name(ctx context.Context, p entities.Placemark) entities.Placemark {
	name, err := a.geocoder.ReverseGeocode(ctx, p.Coordinate)
	if err != nil {
		slog.Debug("reverse geocode failed", "coordinate", p.Coordinate.String(), "error", err)
		return p
	}
	if name != "" {
		p.Name = name
	}
	return p
}

// Apply publishes a fetch result. It must run on the UI goroutine. Only the
// first result is applied.
func (a *Adapter) Apply(res Result) {
	if a.applied {
		return
	}
	a.applied = true
	defer func() {
		for _, fn := range a.observers {
			fn(res)
		}
	}()

	if res.Err == nil && len(res.Routes) == 0 {
		res.Err = provider.ErrNoRoutes
	}
	if res.Err != nil {
		slog.Warn("route request failed",
			"source", res.Request.Source.Title(),
			"destination", res.Request.Destination.Title(),
			"error", res.Err,
		)
		a.state.Fail(res.Err)
		return
	}

	route := res.Routes[0]
	a.surface.AddAnnotations(
		mapsurface.Annotation{Title: res.Request.Source.Title(), Coordinate: res.Request.Source.Coordinate},
		mapsurface.Annotation{Title: res.Request.Destination.Title(), Coordinate: res.Request.Destination.Coordinate},
	)
	line := mapsurface.NewPolyline(route.Polyline)
	a.surface.AddOverlay(line)
	if len(route.Polyline) > 0 {
		a.fitted, a.hasFitted = line.Bound(), true
		a.Refit()
	}
	a.state.Replace(route.Instructions())

	slog.Info("route applied",
		"routes", len(res.Routes),
		"steps", len(route.Steps),
		"instructions", a.state.Len(),
		"elapsed", res.Elapsed,
	)
}

// Refit fits the visible region to the applied route again. Call it after
// the surface is resized, since padding is measured in cells.
func (a *Adapter) Refit() {
	if !a.hasFitted {
		return
	}
	a.surface.SetVisibleBound(a.fitted, mapsurface.UniformInsets(a.cfg.EdgePadding))
}
