// Package provider fetches driving directions from an external routing
// service.
package provider

import (
	"context"
	"errors"

	"directions-viewer/entities"
)

// ErrNoRoutes is returned when the provider answered but found no route.
var ErrNoRoutes = errors.New("no routes")

// RouteProvider returns routes ranked best first.
type RouteProvider interface {
	Routes(ctx context.Context, req entities.RouteRequest) ([]entities.Route, error)
}

// Geocoder resolves a human readable name for a coordinate.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, c entities.Coordinate) (string, error)
}

// Static always answers with the same routes or error.
type Static struct {
	Result []entities.Route
	Err    error

	Requests []entities.RouteRequest
}

func (s *Static) Routes(ctx context.Context, req entities.RouteRequest) ([]entities.Route, error) {
	s.Requests = append(s.Requests, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Result, nil
}
