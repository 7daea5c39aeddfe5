package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fouadsfarijlani/libfhir/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	// Listen for interrupt signals (CTRL/CMD+C, OS instructing the process to stop) to cancel context.
	ctx, cancelFunc := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()
	if err := cmd.Execute(ctx); err != nil {
		cancelFunc()
		log.Fatal().Err(err).Msg("libfhir failed")
	}
}
