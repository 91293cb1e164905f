package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directions-viewer/entities"
)

func TestStraightLineRoute(t *testing.T) {
	routes, err := StraightLine{}.Routes(context.Background(), entities.RouteRequest{
		Source:      nyc,
		Destination: entities.Placemark{Name: "Boston", Coordinate: boston.Coordinate},
	})
	require.NoError(t, err)
	require.Len(t, routes, 1)

	r := routes[0]
	assert.InDelta(t, 306000, r.DistanceMeters, 5000)
	require.Len(t, r.Polyline, 3)
	assert.Equal(t, nyc.Coordinate, r.Polyline[0])
	assert.Equal(t, boston.Coordinate, r.Polyline[2])

	instr := r.Instructions()
	require.Len(t, instr, 2)
	assert.Contains(t, instr[0], "Head northeast")
	assert.Equal(t, "Arrive at Boston", instr[1])
}

func TestStraightLineCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := StraightLine{}.Routes(ctx, entities.RouteRequest{Source: nyc, Destination: boston})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompassPoint(t *testing.T) {
	assert.Equal(t, "north", compassPoint(0))
	assert.Equal(t, "north", compassPoint(359))
	assert.Equal(t, "east", compassPoint(91))
	assert.Equal(t, "southwest", compassPoint(-135))
}
