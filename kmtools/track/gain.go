package track

import (
	"math"
)

// TotalElevationGain sums the positive elevation deltas between consecutive
// points within each segment, in meters rounded to the nearest integer.
// Segments are not chained to each other and pairs with a missing elevation
// on either side contribute nothing.
func (t Track) TotalElevationGain() int {
	return t.accumulateDeltas(func(delta float64) float64 {
		if delta > 0 {
			return delta
		}
		return 0
	})
}

// TotalElevationLoss is the descending counterpart of TotalElevationGain.
func (t Track) TotalElevationLoss() int {
	return t.accumulateDeltas(func(delta float64) float64 {
		if delta < 0 {
			return -delta
		}
		return 0
	})
}

// accumulateDeltas walks consecutive pairs strictly left to right so the
// floating point sum is reproducible, then rounds once at the end.
func (t Track) accumulateDeltas(f func(delta float64) float64) int {
	var total float64
	for _, s := range t.Segments {
		for i := 1; i < len(s); i++ {
			prev, curr := s[i-1].Elevation, s[i].Elevation
			if !prev.NotNull() || !curr.NotNull() {
				continue
			}
			total += f(curr.Value() - prev.Value())
		}
	}
	return int(math.Round(total))
}
