package track

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Bounds returns the boundaries of the track across all segments.
func (t Track) Bounds() Bounds {
	b := Bounds{MinLat: 90, MinLng: 180, MaxLat: -90, MaxLng: -180}
	for _, s := range t.Segments {
		for _, p := range s {
			if p.Latitude < b.MinLat {
				b.MinLat = p.Latitude
			}
			if p.Latitude > b.MaxLat {
				b.MaxLat = p.Latitude
			}
			if p.Longitude < b.MinLng {
				b.MinLng = p.Longitude
			}
			if p.Longitude > b.MaxLng {
				b.MaxLng = p.Longitude
			}
		}
	}
	return b
}
