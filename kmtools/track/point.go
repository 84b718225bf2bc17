package track

import (
	"github.com/tkrajina/gpxgo/gpx"
)

// Point is a single gps fix along a track. Elevation is nullable, some
// sources have no altitude reading for a fix.
type Point struct {
	Latitude, Longitude float64
	Elevation           gpx.NullableFloat64
}

// NewPoint creates a point with an elevation value.
func NewPoint(lat, lng, elevation float64) Point {
	return Point{
		Latitude:  lat,
		Longitude: lng,
		Elevation: *gpx.NewNullableFloat64(elevation),
	}
}
