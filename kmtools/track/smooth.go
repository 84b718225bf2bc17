package track

import (
	"github.com/tkrajina/gpxgo/gpx"
)

// SmoothElevation removes elevation spikes caused by gps sensor noise. An
// interior point is a spike when its elevation deviates from both neighbors
// by more than the threshold (in meters) and it is a strict local extremum, a
// peak or a trough. Spikes get the mean of the neighbor elevations; latitude,
// longitude and point count never change. The scan is a single pass reading
// the original elevations, already-smoothed values are never re-read as
// neighbors. A threshold of zero or below is accepted and marks every strict
// local extremum as a spike.
//
// Returns the smoothed track and the number of spikes removed.
func (t Track) SmoothElevation(thresholdMeters float64) (Track, int) {
	spikes := 0

	segments := make([]Segment, len(t.Segments))
	for i, s := range t.Segments {
		smoothed, n := smoothSegment(s, thresholdMeters)
		segments[i] = smoothed
		spikes += n
	}

	return Track{Name: t.Name, Segments: segments}, spikes
}

func smoothSegment(s Segment, threshold float64) (Segment, int) {
	if len(s) < 3 {
		return s.clone(), 0
	}

	out := s.clone()
	spikes := 0

	for i := 1; i < len(s)-1; i++ {
		prev, curr, next := s[i-1].Elevation, s[i].Elevation, s[i+1].Elevation
		if !prev.NotNull() || !curr.NotNull() || !next.NotNull() {
			continue
		}

		if !isSpike(prev.Value(), curr.Value(), next.Value(), threshold) {
			continue
		}

		interpolated := (prev.Value() + next.Value()) / 2.0
		out[i].Elevation = *gpx.NewNullableFloat64(interpolated)
		spikes++
	}

	return out, spikes
}

func isSpike(prev, curr, next, threshold float64) bool {
	up := curr - prev
	if up < 0 {
		up = -up
	}
	down := next - curr
	if down < 0 {
		down = -down
	}
	if up <= threshold || down <= threshold {
		return false
	}

	peak := curr > prev && curr > next
	trough := curr < prev && curr < next
	return peak || trough
}
