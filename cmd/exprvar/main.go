package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/scenarigo/exprvar/cmd/exprvar/cmd"
	"github.com/scenarigo/exprvar/color"
)

func main() {
	if err := run(); err != nil {
		color.New().Red().Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cmd.Execute(ctx)
}
