package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"realty/internal/client"
	"realty/internal/config"
	"realty/internal/console"
)

func main() {
	log.SetFlags(0)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.API.Debug {
		log.Printf("[DEBUG] API base URL: %s (timeout %s)", cfg.API.BaseURL, cfg.API.Timeout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(&cfg.API, nil)
	err = console.New(api, os.Stdout).Run(ctx, os.Args[1:])
	switch {
	case err == nil:
		return
	case errors.Is(err, console.ErrUsage):
		log.Printf("%v\n", err)
		console.Usage(os.Stderr)
		stop()
		os.Exit(2)
	default:
		log.Printf("❌ %v", err)
		stop()
		os.Exit(1)
	}
}
