// Package main provides the interactive dice roller.
//
// It reads expressions such as "2d6+3" from standard input, one per line,
// and prints the rolled values until "exit" or "quit" is entered.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/louisbranch/diceroll/internal/platform/cmd"
	"github.com/louisbranch/diceroll/internal/platform/config"
	"github.com/louisbranch/diceroll/internal/platform/terminal"
	"github.com/louisbranch/diceroll/internal/random"
	"github.com/louisbranch/diceroll/internal/tools/roller"
)

func main() {
	cfg, err := roller.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	cfg.Echo = cfg.Echo.Resolve(terminal.IsTerminal(os.Stdin))

	src, err := random.New()
	if err != nil {
		config.Exitf("seed random source: %v", err)
	}

	if err := cmd.RunWithTelemetry(context.Background(), cmd.ServiceDiceroll, func(ctx context.Context) error {
		return roller.Run(ctx, cfg, os.Stdin, os.Stdout, src)
	}); err != nil {
		config.Exitf("%v", err)
	}
}
