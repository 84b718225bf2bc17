package gpxutils_test

import (
	"testing"

	"komoot-tools/kmtools/gpxutils"
	"komoot-tools/kmtools/track"

	"github.com/stretchr/testify/require"
	"github.com/tkrajina/gpxgo/gpx"
)

func TestFilename(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		tourName   string
		gain       int
		simplified bool
		smoothed   bool
		want       string
	}{
		"plain":      {tourName: "Morning Ride", gain: 120, want: "Morning_Ride_D120m.gpx"},
		"simplified": {tourName: "Tour", gain: 13, simplified: true, want: "Tour_D13m_simplified.gpx"},
		"smoothed":   {tourName: "Tour", gain: 13, smoothed: true, want: "Tour_D13m_smoothed.gpx"},
		"both":       {tourName: "Tour", gain: 0, simplified: true, smoothed: true, want: "Tour_D0m_simplified_smoothed.gpx"},
		"unsafe":     {tourName: "Gran Paradiso / Colle del Nivolet!", gain: 2000, want: "Gran_Paradiso___Colle_del_Nivolet__D2000m.gpx"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := gpxutils.Filename(tc.tourName, tc.gain, tc.simplified, tc.smoothed)
			require.Equal(tc.want, got)
		})
	}
}

func TestToGPX(t *testing.T) {
	require := require.New(t)

	noElevation := track.Point{Latitude: 45.002, Longitude: 11.002}
	tr := track.New("Morning Ride", []track.Point{
		track.NewPoint(45.0, 11.0, 100),
		track.NewPoint(45.001, 11.001, 150),
		noElevation,
	})

	g := gpxutils.ToGPX(tr)

	require.Equal("1.1", g.Version)
	require.Equal("komoot-tools", g.Creator)
	require.Equal("Morning Ride", g.Name)
	require.Len(g.Tracks, 1)
	require.Equal("Morning Ride", g.Tracks[0].Name)
	require.Len(g.Tracks[0].Segments, 1)

	points := g.Tracks[0].Segments[0].Points
	require.Len(points, 3)
	require.Equal(45.0, points[0].Latitude)
	require.Equal(11.0, points[0].Longitude)
	require.Equal(100.0, points[0].Elevation.Value())
	require.False(points[2].Elevation.NotNull())
}

func TestToGPXSerializes(t *testing.T) {
	require := require.New(t)

	tr := track.New("Ride", []track.Point{
		track.NewPoint(45.0, 11.0, 100),
		track.NewPoint(45.001, 11.001, 150),
	})

	xmlBytes, err := gpxutils.ToGPX(tr).ToXml(gpx.ToXmlParams{Version: gpxutils.GpxVersion, Indent: true})
	require.NoError(err)
	require.Contains(string(xmlBytes), `lat="45`)
	require.Contains(string(xmlBytes), "<ele>")
	require.Contains(string(xmlBytes), "<name>Ride</name>")
}
