package main

import (
	"context"
	"flag"
	"fmt"

	"komoot-tools/kmtools/config"
	"komoot-tools/kmtools/convert"
	"komoot-tools/kmtools/komoot"
	"komoot-tools/kmtools/terminal"

	"github.com/google/subcommands"
)

type infoCmd struct{}

func (*infoCmd) Name() string { return "info" }
func (*infoCmd) Synopsis() string {
	return "Show statistics for a Komoot tour without writing a file."
}
func (*infoCmd) Usage() string {
	return `info <url>
	Download the tour at the given Komoot url and print its statistics.
  `
}

func (*infoCmd) SetFlags(f *flag.FlagSet) {}

func (c *infoCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	if f.NArg() != 1 {
		terminal.Error(nil, "Exactly one tour url is required")
		return 2
	}

	client := komoot.NewClient(cfg.UserAgent, cfg.HTTPTimeout())

	o := terminal.NewOperation("Downloading tour from Komoot")
	tr, err := client.DownloadTour(f.Arg(0))
	if err != nil {
		o.Error(err, "Failed to download tour")
		return 1
	}
	o.Success("Downloaded tour '%s'", tr.Name)

	stats := tr.Stats()
	bounds := tr.Bounds()

	fmt.Println("")
	fmt.Printf("   Tour:           %s\n", tr.Name)
	fmt.Printf("   Points:         %d\n", stats.Points)
	fmt.Printf("   Distance:       %.1f km\n", convert.ToKilometers(stats.Distance))
	fmt.Printf("   Elevation gain: %dm\n", stats.ElevationGain)
	fmt.Printf("   Elevation loss: %dm\n", stats.ElevationLoss)
	if stats.StartElevation.NotNull() && stats.EndElevation.NotNull() {
		fmt.Printf("   Start/end:      %.0fm / %.0fm\n", stats.StartElevation.Value(), stats.EndElevation.Value())
	}
	fmt.Printf("   Bounds:         (%.5f, %.5f) (%.5f, %.5f)\n", bounds.MinLat, bounds.MinLng, bounds.MaxLat, bounds.MaxLng)

	return 0
}
