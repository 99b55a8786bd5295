package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"c64mem/emu/log"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("c64mem"),
		kong.Description("C64 address space and bank switching core."),
		kong.UsageOnError(),
	)

	if cli.Log.mask != 0 {
		log.EnableDebugModules(cli.Log.mask)
	}

	checkf(ctx.Run(), "%s", ctx.Command())
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
