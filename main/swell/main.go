package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/swell-scan/swell/cmd/swell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	swell.ExecuteContext(ctx)
}
