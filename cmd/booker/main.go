package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"salon/config"
	"salon/di"
	"salon/internal/tui"
	"salon/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	logPath := flag.String("log", "booker.log", "file the client logs to")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "booker: %v\n", err)
		return 1
	}
	defer logFile.Close()

	logger.InitLoggerWithOutput(logFile)

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := di.InitializeBooker()

	log.Info().Str("gateway", cfg.Client.GatewayURL).Bool("direct", cfg.Client.DirectURL != "").Msg("booker started")

	if err := tui.Run(ctx, tui.Options{Session: s}); err != nil {
		log.Error().Err(err).Msg("booker stopped")
		fmt.Fprintf(os.Stderr, "booker: %v\n", err)
		return 1
	}

	return 0
}
