// Package main prints a walkthrough of fraction arithmetic.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aatomu/fraction/internal/cmd/fracdemo"
)

func main() {
	cfg, err := fracdemo.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := fracdemo.NewLogger(os.Stderr, cfg.Verbose)
	if err := fracdemo.Run(ctx, cfg, os.Stdout, logger); err != nil {
		stop()
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
