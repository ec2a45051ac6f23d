package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Check   CheckCmd         `cmd:"" help:"Parse hand scripts and report errors"`
	View    ViewCmd          `cmd:"" help:"Replay a hand script in the terminal"`
	Export  ExportCmd        `cmd:"" help:"Export a hand script as PHH TOML"`
	Serve   ServeCmd         `cmd:"" help:"Stream replay frames to websocket clients"`
	Deal    DealCmd          `cmd:"" help:"Generate a random sample hand script"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handreplay"),
		kong.Description("Parse and replay poker hand scripts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
