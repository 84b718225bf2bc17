package main

import (
	"context"
	"flag"
	"os"

	"komoot-tools/kmtools/config"
	t "komoot-tools/kmtools/terminal"

	"github.com/google/subcommands"
)

func main() {

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&downloadCmd{}, "")
	subcommands.Register(&infoCmd{}, "")

	cfg, err := config.Load()
	if err != nil {
		t.Error(err, "Failed to load config")
		os.Exit(1)
	}

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
