package track

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// metersPerDegree is the flat-earth approximation used to convert the
// simplification tolerance to coordinate degrees. It loses accuracy at high
// latitudes but is kept for compatibility with the expected outputs.
const metersPerDegree = 111000.0

// Simplify reduces the number of points in each segment with the
// Douglas-Peucker algorithm while preserving the overall shape. The tolerance
// is the maximum allowed perpendicular deviation in meters; a negative
// tolerance is rejected. First and last point of every segment are always
// kept, segments with fewer than 3 points are returned unchanged.
func (t Track) Simplify(toleranceMeters float64) (Track, error) {
	if toleranceMeters < 0 {
		return Track{}, errors.New("simplify tolerance must not be negative")
	}

	toleranceDegrees := toleranceMeters / metersPerDegree

	segments := make([]Segment, len(t.Segments))
	for i, s := range t.Segments {
		segments[i] = simplifySegment(s, toleranceDegrees)
	}

	return Track{Name: t.Name, Segments: segments}, nil
}

func simplifySegment(s Segment, toleranceDegrees float64) Segment {
	if len(s) < 3 {
		return s.clone()
	}

	line := make(orb.LineString, len(s))
	for i, p := range s {
		line[i] = orb.Point{p.Longitude, p.Latitude}
	}

	simplified := simplify.DouglasPeucker(toleranceDegrees).LineString(line)

	// The geometric pass works on coordinates only. Map every retained
	// coordinate back to the closest original point so elevation and any
	// other per-point attributes survive.
	out := make(Segment, len(simplified))
	for i, coord := range simplified {
		out[i] = s.closestPoint(coord)
	}
	return out
}

// closestPoint returns the point nearest to the given lng/lat coordinate,
// by planar distance. Ties go to the first occurrence in the segment.
func (s Segment) closestPoint(coord orb.Point) Point {
	closest := s[0]
	minDistance := planar.DistanceSquared(orb.Point{s[0].Longitude, s[0].Latitude}, coord)

	for _, p := range s[1:] {
		d := planar.DistanceSquared(orb.Point{p.Longitude, p.Latitude}, coord)
		if d < minDistance {
			minDistance = d
			closest = p
		}
	}

	return closest
}
