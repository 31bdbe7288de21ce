package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"taktapp/planner/internal/config"
	"taktapp/planner/internal/db"
	"taktapp/planner/internal/logging"
	"taktapp/planner/internal/routes"
	"taktapp/planner/migrator/sqlite"
)

func main() {
	initDB := flag.Bool("init-db", false, "initialise the database and exit")
	flag.Parse()

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Planner starting up",
		"environment", cfg.AppEnv,
		"database", cfg.DatabasePath,
	)

	sdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logging.Error("Failed to open store", "error", err.Error())
		log.Fatalf("failed to open store: %v", err)
	}
	defer sdb.Close()

	if err := sqlite.Migrate(sdb.DB); err != nil {
		logging.Error("Failed to run migrations", "error", err.Error())
		log.Fatalf("failed to run migrations: %v", err)
	}
	if err := db.EnsureDefaults(context.Background(), sdb, cfg.AdminPin); err != nil {
		logging.Error("Failed to seed defaults", "error", err.Error())
		log.Fatalf("failed to seed defaults: %v", err)
	}

	if *initDB {
		logging.Info("Database initialised", "path", cfg.DatabasePath)
		return
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(sdb, upSince)

	// metrics endpoint outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logging.Info("Server starting", "port", cfg.Port, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logging.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		log.Fatalf("server error: %v", err)
	}
}
