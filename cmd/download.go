package main

import (
	"context"
	"flag"

	"komoot-tools/kmtools/config"
	"komoot-tools/kmtools/gpxutils"
	"komoot-tools/kmtools/komoot"
	"komoot-tools/kmtools/terminal"

	"github.com/google/subcommands"
)

type downloadCmd struct {
	output            string
	simplify          bool
	simplifyTolerance float64
	smooth            bool
	smoothThreshold   float64
}

// DefaultSimplifyTolerance is the simplification tolerance in meters used
// when -s is given without -tolerance.
const DefaultSimplifyTolerance = 5.0

// DefaultSmoothThreshold is the elevation spike threshold in meters used
// when -e is given without -threshold.
const DefaultSmoothThreshold = 10.0

func (*downloadCmd) Name() string { return "download" }
func (*downloadCmd) Synopsis() string {
	return "Download a Komoot tour and write it as a GPX file."
}
func (*downloadCmd) Usage() string {
	return `download [-o FILE] [-s [-tolerance METERS]] [-e [-threshold METERS]] <url>
	Download the tour at the given Komoot url, optionally simplify the track
	and smooth its elevation profile, then write a GPX 1.1 file.
  `
}

func (c *downloadCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "output file, '-' writes the GPX to stdout (default: derived from the tour name)")
	f.BoolVar(&c.simplify, "s", false, "simplify the track using the Douglas-Peucker algorithm")
	f.Float64Var(&c.simplifyTolerance, "tolerance", DefaultSimplifyTolerance, "tolerance for track simplification in meters")
	f.BoolVar(&c.smooth, "e", false, "smooth elevation data by removing gps spikes")
	f.Float64Var(&c.smoothThreshold, "threshold", DefaultSmoothThreshold, "threshold for elevation smoothing in meters")
}

func (c *downloadCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	if f.NArg() != 1 {
		terminal.Error(nil, "Exactly one tour url is required")
		return 2
	}
	tourURL := f.Arg(0)

	client := komoot.NewClient(cfg.UserAgent, cfg.HTTPTimeout())

	// download tour from Komoot
	o := terminal.NewOperation("Downloading tour from Komoot")
	tr, err := client.DownloadTour(tourURL)
	if err != nil {
		o.Error(err, "Failed to download tour")
		return 1
	}
	o.Success("Downloaded tour '%s' (%d points)", tr.Name, tr.NumPoints())

	// reduce track geometry
	if c.simplify {
		o = terminal.NewOperation("Simplifying track with tolerance %.1fm", c.simplifyTolerance)
		before := tr.NumPoints()
		simplified, err := tr.Simplify(c.simplifyTolerance)
		if err != nil {
			o.Error(err, "Failed to simplify track")
			return 1
		}
		tr = simplified
		after := tr.NumPoints()
		o.Success("Track simplified: %d -> %d points (%.1f%% reduction)", before, after, (1-float64(after)/float64(before))*100)
	}

	// remove elevation spikes
	if c.smooth {
		o = terminal.NewOperation("Smoothing elevation with threshold %.0fm", c.smoothThreshold)
		smoothed, spikes := tr.SmoothElevation(c.smoothThreshold)
		tr = smoothed
		o.Success("Elevation smoothed: %d spikes removed", spikes)
	}

	gain := tr.TotalElevationGain()

	path := c.output
	if path == "" {
		path = gpxutils.Filename(tr.Name, gain, c.simplify, c.smooth)
	}

	o = terminal.NewOperation("Writing GPX")
	if err := gpxutils.Write(gpxutils.ToGPX(tr), path); err != nil {
		o.Error(err, "Failed to write GPX to '%s'", path)
		return 1
	}

	if path == "-" {
		o.Success("GPX written to stdout (%dm elevation gain)", gain)
	} else {
		o.Success("GPX written to '%s' (%dm elevation gain)", path, gain)
	}

	return 0
}
