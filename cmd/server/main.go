package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"medref/internal/config"
	"medref/internal/metrics"
	"medref/internal/server"
	"medref/internal/tables"
)

func main() {
	// .env file is optional
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()

	manifest, err := config.LoadManifest(cfg.ManifestFile)
	if err != nil {
		log.Fatalf("Failed to read dataset manifest: %v", err)
	}

	// Datasets load once; a dataset that fails to load stays absent for
	// the process lifetime and its queries report "dataset not loaded".
	store := tables.Load(cfg.DataDir, manifest)

	metrics.Init()
	for _, d := range store.Status() {
		metrics.SetDatasetLoaded(d.Name, d.Loaded)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(store)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
