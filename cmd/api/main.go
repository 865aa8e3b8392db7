package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"ruleset/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config (optionally from a local .env).
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start telemetry relay and HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("ruleset api stopped with error: %v", err)
	}
}
