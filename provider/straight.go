package provider

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"directions-viewer/entities"
)

// StraightLine is an offline provider. It answers every request with a single
// route running straight from source to destination.
type StraightLine struct{}

func (StraightLine) Routes(ctx context.Context, req entities.RouteRequest) ([]entities.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	from := orb.Point{req.Source.Coordinate.Lng, req.Source.Coordinate.Lat}
	to := orb.Point{req.Destination.Coordinate.Lng, req.Destination.Coordinate.Lat}
	meters := int(math.Round(geo.Distance(from, to)))
	mid := geo.Midpoint(from, to)

	return []entities.Route{{
		Summary:        "straight line",
		DistanceMeters: meters,
		Polyline: []entities.Coordinate{
			req.Source.Coordinate,
			{Lat: mid.Lat(), Lng: mid.Lon()},
			req.Destination.Coordinate,
		},
		Steps: []entities.Step{
			{Instruction: ""},
			{
				Instruction:    fmt.Sprintf("Head %s for %.1f km", compassPoint(geo.Bearing(from, to)), float64(meters)/1000),
				DistanceMeters: meters,
			},
			{Instruction: "Arrive at " + req.Destination.Title()},
		},
	}}, nil
}

var compass = []string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// compassPoint maps a bearing in degrees to one of eight compass points.
func compassPoint(bearing float64) string {
	b := math.Mod(bearing+360, 360)
	return compass[int(math.Round(b/45))%len(compass)]
}
