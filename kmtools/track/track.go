package track

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tkrajina/gpxgo/gpx"
)

// Track represents a gps track as an ordered list of segments. Tracks are
// value snapshots: every transformation returns a new track and leaves its
// receiver untouched.
type Track struct {
	Name     string
	Segments []Segment
}

// Segment is an ordered, contiguous sequence of points within a track.
type Segment []Point

// Stats track statistics
type Stats struct {
	Points         int
	Distance       float64
	ElevationGain  int
	ElevationLoss  int
	StartElevation gpx.NullableFloat64
	EndElevation   gpx.NullableFloat64
}

const earthRadius = 6378100

// New creates a single-segment track from the given points.
func New(name string, points []Point) Track {
	segment := make(Segment, len(points))
	copy(segment, points)

	return Track{
		Name:     name,
		Segments: []Segment{segment},
	}
}

// NumPoints returns the total number of points across all segments.
func (t Track) NumPoints() int {
	n := 0
	for _, s := range t.Segments {
		n += len(s)
	}
	return n
}

// Stats retrieves statistics from the track
func (t Track) Stats() Stats {
	return Stats{
		Points:         t.NumPoints(),
		Distance:       t.distance(),
		ElevationGain:  t.TotalElevationGain(),
		ElevationLoss:  t.TotalElevationLoss(),
		StartElevation: t.startElevation(),
		EndElevation:   t.endElevation(),
	}
}

// distance sums geodesic segment lengths in meters.
func (t Track) distance() float64 {
	var meters float64
	for _, s := range t.Segments {
		if len(s) < 2 {
			continue
		}

		latLngs := make([]s2.LatLng, len(s))
		for i, p := range s {
			latLngs[i] = toS2LatLng(p)
		}

		polyline := s2.PolylineFromLatLngs(latLngs)
		meters += polyline.Length().Radians() * earthRadius
	}
	return meters
}

func (t Track) startElevation() gpx.NullableFloat64 {
	for _, s := range t.Segments {
		if len(s) > 0 {
			return s[0].Elevation
		}
	}
	return gpx.NullableFloat64{}
}

func (t Track) endElevation() gpx.NullableFloat64 {
	for i := len(t.Segments) - 1; i >= 0; i-- {
		s := t.Segments[i]
		if len(s) > 0 {
			return s[len(s)-1].Elevation
		}
	}
	return gpx.NullableFloat64{}
}

func (s Segment) clone() Segment {
	out := make(Segment, len(s))
	copy(out, s)
	return out
}

func toS2LatLng(p Point) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Latitude) * s1.Degree,
		Lng: s1.Angle(p.Longitude) * s1.Degree,
	}
}
