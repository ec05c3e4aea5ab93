package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/shootr/server/core"
)

func main() {
	envFile := flag.String("env", ".env", "Environment file to load")
	port := flag.Int("port", 0, "Server port (overrides CORE_PORT)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate (overrides CORE_UPDATES_PER_SEC)")
	flag.Parse()

	cfg, err := core.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *tickRate != 0 {
		cfg.UpdatesPerSec = *tickRate
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := core.NewServer(cfg)
	log.Printf("Starting shootr server on port %d (tick rate: %d/s, world: %vx%v)",
		cfg.Port, cfg.UpdatesPerSec, cfg.WorldWidth, cfg.WorldHeight)
	if err := server.ListenAndServe(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
