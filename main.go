package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/BeerHall/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Beer Hall"), kong.Description("BeerHall keeps track of the brewers behind your beers."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
