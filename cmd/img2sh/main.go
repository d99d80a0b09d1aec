package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dialup-inc/img2sh/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		slog.Error("img2sh failed", slog.Any("error", err))
		os.Exit(1)
	}
}
