package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc/health"

	"foodTracker/internal/catalog"
	"foodTracker/internal/config"
	"foodTracker/internal/db"
	grpcserver "foodTracker/internal/grpc"
	"foodTracker/internal/tracker"
	"foodTracker/internal/web"
	"foodTracker/repository"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("Configuration loaded: %v", cfg)

	// Open DB
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	users := repository.NewUserRepository(d)
	foods := repository.NewFoodRepository(d)
	consumptions := repository.NewConsumptionRepository(d)

	if cfg.Catalog.JSONPath != "" {
		list, err := catalog.LoadFromJSON(cfg.Catalog.JSONPath)
		if err != nil {
			log.Fatalf("load food catalog: %v", err)
		}
		n, err := catalog.Import(context.Background(), foods, list)
		if err != nil {
			log.Fatalf("import food catalog: %v", err)
		}
		log.Printf("Imported %d foods from %s", n, cfg.Catalog.JSONPath)
	}

	hs := health.NewServer()

	// Start gRPC
	stopGRPC, grpcAddr, err := grpcserver.StartGRPC(cfg, hs)
	if err != nil {
		log.Fatalf("start grpc: %v", err)
	}
	log.Printf("gRPC server listening on %s", grpcAddr)

	// Start HTTP
	router := web.NewRouter(web.Deps{
		Tracker: tracker.NewService(foods, consumptions),
		Users:   users,
		Auth:    cfg.Auth,
		Health:  hs,
	})
	stopHTTP, err := web.StartHTTP(cfg, router)
	if err != nil {
		log.Fatalf("start http: %v", err)
	}
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)
	grpcserver.MarkServing(hs)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := stopHTTP(ctx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := stopGRPC(ctx); err != nil {
		log.Printf("grpc shutdown error: %v", err)
	}
}
