package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"persianas-backend/internal/config"
	"persianas-backend/internal/db"
	"persianas-backend/internal/server"
	"persianas-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Seed the default catalog and exit")
)

func main() {
	flag.Parse()

	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if cfg.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	conn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *migrateOnlyFlag {
		// Connect already ran the migrations, nothing left to do.
		log.Info("Migrations completed successfully")
		return
	}

	catalog := services.NewCatalogService(conn)
	if *seedOnlyFlag {
		inserted, err := catalog.Seed()
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Infof("Seeding completed, %d products inserted", inserted)
		return
	}
	if cfg.Seed {
		if inserted, err := catalog.Seed(); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		} else if inserted > 0 {
			log.Infof("Seeded %d default products", inserted)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(conn, log),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s (env=%s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}
	log.Info("Server stopped gracefully")
}
