// Command miaudota browses the shelter's pets from the terminal: filtered
// listings, an interactive gallery, and adoption request review.
//
// Configuration is read from --config, $CONFIG_PATH or ./config.yaml, with
// ENV overrides. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/miaudota/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
