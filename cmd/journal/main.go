package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/glabrego/journal-cli/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
