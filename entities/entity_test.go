package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteInstructions(t *testing.T) {
	r := Route{Steps: []Step{
		{Instruction: "Head north on X"},
		{Instruction: ""},
		{Instruction: "Merge onto Y"},
	}}
	assert.Equal(t, []string{"Head north on X", "Merge onto Y"}, r.Instructions())
}

func TestRouteInstructionsAllEmpty(t *testing.T) {
	r := Route{Steps: []Step{{}, {Instruction: ""}}}
	assert.Empty(t, r.Instructions())
}

func TestParseTransportMode(t *testing.T) {
	for _, m := range []TransportMode{TransportAutomobile, TransportWalking, TransportTransit, TransportAny} {
		got, err := ParseTransportMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseTransportMode("hovercraft")
	assert.Error(t, err)
}

func TestPlacemarkTitle(t *testing.T) {
	p := Placemark{Coordinate: Coordinate{Lat: 40.71, Lng: -74}}
	assert.Equal(t, "40.710000,-74.000000", p.Title())
	p.Name = "New York"
	assert.Equal(t, "New York", p.Title())
}
