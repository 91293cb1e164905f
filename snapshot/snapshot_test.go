package snapshot

import (
	"image/color"
	"testing"

	sm "github.com/flopp/go-staticmaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"directions-viewer/entities"
	"directions-viewer/mapsurface"
	"directions-viewer/mapview"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0000FF")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, c)

	_, err = ParseColor("blue")
	assert.Error(t, err)
}

func TestObjects(t *testing.T) {
	s := mapsurface.New(10, 10)
	s.SetDelegate(mapview.Coordinator{StrokeColor: "#0000FF", LineWidth: 5})
	src := entities.Coordinate{Lat: 40.71, Lng: -74}
	dst := entities.Coordinate{Lat: 42.36, Lng: -71.05}
	s.AddOverlay(mapsurface.NewPolyline([]entities.Coordinate{src, dst}))
	s.AddAnnotations(mapsurface.Annotation{Coordinate: src}, mapsurface.Annotation{Coordinate: dst})

	objs, err := Objects(s)
	require.NoError(t, err)
	require.Len(t, objs, 3)

	path, ok := objs[0].(*sm.Path)
	require.True(t, ok)
	assert.Len(t, path.Positions, 2)
	assert.Equal(t, 5.0, path.Weight)
	assert.IsType(t, &sm.Marker{}, objs[1])
}

func TestObjectsBadColor(t *testing.T) {
	s := mapsurface.New(10, 10)
	s.SetDelegate(mapview.Coordinator{StrokeColor: "not-a-color", LineWidth: 5})
	s.AddOverlay(mapsurface.NewPolyline([]entities.Coordinate{{}, {Lat: 1, Lng: 1}}))

	_, err := Objects(s)
	assert.Error(t, err)
}

func TestObjectsEmptySurface(t *testing.T) {
	objs, err := Objects(mapsurface.New(10, 10))
	require.NoError(t, err)
	assert.Empty(t, objs)
}
