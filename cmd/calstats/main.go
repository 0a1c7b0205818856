package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"calstats/internal/cli"
	appLog "calstats/internal/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Execute(ctx)
	appLog.Sync()
	os.Exit(code)
}
