package provider

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	maps "googlemaps.github.io/maps"

	"directions-viewer/entities"
)

// Google talks to the Google Maps Directions and Geocoding APIs.
type Google struct {
	client *maps.Client
}

func NewGoogle(apiKey, baseURL string) (*Google, error) {
	opts := []maps.ClientOption{maps.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("maps.NewClient: %w", err)
	}
	return &Google{client: client}, nil
}

func travelMode(m entities.TransportMode) maps.Mode {
	switch m {
	case entities.TransportWalking:
		return maps.TravelModeWalking
	case entities.TransportTransit:
		return maps.TravelModeTransit
	default:
		return maps.TravelModeDriving
	}
}

func (g *Google) Routes(ctx context.Context, req entities.RouteRequest) ([]entities.Route, error) {
	dr := &maps.DirectionsRequest{
		Origin:      req.Source.Coordinate.String(),
		Destination: req.Destination.Coordinate.String(),
		Mode:        travelMode(req.Transport),
	}

	routesResp, _, err := g.client.Directions(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	if len(routesResp) == 0 {
		return nil, ErrNoRoutes
	}

	out := make([]entities.Route, 0, len(routesResp))
	for _, rt := range routesResp {
		route, err := convertRoute(rt)
		if err != nil {
			return nil, err
		}
		out = append(out, route)
	}
	return out, nil
}

func convertRoute(rt maps.Route) (entities.Route, error) {
	route := entities.Route{Summary: rt.Summary}

	path, err := rt.OverviewPolyline.Decode()
	if err != nil {
		return route, fmt.Errorf("decode overview polyline: %w", err)
	}
	route.Polyline = make([]entities.Coordinate, 0, len(path))
	for _, p := range path {
		route.Polyline = append(route.Polyline, entities.Coordinate{Lat: p.Lat, Lng: p.Lng})
	}

	for _, leg := range rt.Legs {
		if leg == nil {
			continue
		}
		route.DistanceMeters += leg.Distance.Meters
		for _, step := range leg.Steps {
			if step == nil {
				continue
			}
			route.Steps = append(route.Steps, entities.Step{
				Instruction:    stripHTML(step.HTMLInstructions),
				DistanceMeters: step.Distance.Meters,
			})
		}
	}
	return route, nil
}

// ReverseGeocode prefers the street name over the full formatted address.
func (g *Google) ReverseGeocode(ctx context.Context, c entities.Coordinate) (string, error) {
	resp, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: c.Lat, Lng: c.Lng},
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocode %s: %w", c, err)
	}
	if len(resp) == 0 {
		return "", nil
	}
	for _, comp := range resp[0].AddressComponents {
		for _, t := range comp.Types {
			if t == "route" {
				return comp.LongName, nil
			}
		}
	}
	return resp[0].FormattedAddress, nil
}

// breakTags separate words when Google nests a note inside an instruction,
// e.g. "Main St<div>Destination will be on the right</div>".
var breakTags = map[string]bool{"div": true, "br": true, "p": true, "li": true}

// stripHTML turns html_instructions into plain text: tags dropped, entities
// decoded and whitespace collapsed.
func stripHTML(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if breakTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
}
