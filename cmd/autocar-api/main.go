// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autocar/internal/config"
	httptransport "autocar/internal/http"
	"autocar/internal/infra"
	"autocar/internal/maps"
	"autocar/internal/modules/rates"
	"autocar/internal/modules/tariff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	ratesStore := rates.NewStore(dbPool)
	regionCache := rates.NewRegionCache(redisClient, cfg.Redis.RegionCacheTTL)
	ratesSvc := rates.NewService(ratesStore, regionCache)
	if _, err := ratesSvc.Reload(ctx); err != nil {
		log.Fatalf("load rate tables: %v", err)
	}

	tariffSvc := tariff.NewService(cfg.Tariff)

	var estimator *maps.Estimator
	if cfg.Maps.APIKey != "" {
		estimator, err = maps.NewEstimator(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Rates:     ratesSvc,
		Tariff:    tariffSvc,
		TripRules: cfg.Tariff.Trip,
		Estimator: estimator,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
