package gpxutils

import (
	"os"

	"komoot-tools/kmtools/track"

	"github.com/tkrajina/gpxgo/gpx"
)

// GpxVersion GPX version
const GpxVersion = "1.1"

const creator = "komoot-tools"
const gpxXMLNs = "http://www.topografix.com/GPX/1/1"
const gpxXMLNsXsi = "http://www.w3.org/2001/XMLSchema-instance"

// ToGPX converts a track into a GPX 1.1 document.
func ToGPX(t track.Track) *gpx.GPX {
	segments := make([]gpx.GPXTrackSegment, len(t.Segments))
	for i, s := range t.Segments {
		points := make([]gpx.GPXPoint, len(s))
		for j, p := range s {
			points[j] = gpx.GPXPoint{
				Point: gpx.Point{
					Latitude:  p.Latitude,
					Longitude: p.Longitude,
					Elevation: p.Elevation,
				},
			}
		}
		segments[i] = gpx.GPXTrackSegment{Points: points}
	}

	return &gpx.GPX{
		XMLNs:        gpxXMLNs,
		XmlNsXsi:     gpxXMLNsXsi,
		XmlSchemaLoc: gpxXMLNs,

		Version: GpxVersion,
		Creator: creator,
		Name:    t.Name,
		Tracks: []gpx.GPXTrack{
			{Name: t.Name, Segments: segments},
		},
	}
}

// Write serializes the GPX document to the given path. A path of "-" writes
// to stdout instead.
func Write(g *gpx.GPX, path string) error {
	xmlBytes, err := g.ToXml(gpx.ToXmlParams{Version: GpxVersion, Indent: true})
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = os.Stdout.Write(xmlBytes)
		return err
	}

	return os.WriteFile(path, xmlBytes, 0644)
}
