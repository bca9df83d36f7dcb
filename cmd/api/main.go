package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/givehub/eventsapi/internal/config"
	"github.com/givehub/eventsapi/internal/db"
	httpx "github.com/givehub/eventsapi/internal/http"
	"github.com/givehub/eventsapi/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	log := observability.NewLogger(cfg.Env)

	// tracing, exporter is lazy so a missing collector is not fatal
	shutdownTracer, err := observability.InitTracer(context.Background(), "givehub-eventsapi", cfg.OTLPEndpoint)

	if err != nil {
		log.Error("tracer init failed", "err", err)
	}

	pool, err := db.NewPool(cfg.DBURL)

	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	seedCtx, cancelSeed := config.WithTimeout(5 * time.Second)
	err = db.EnsureCategories(seedCtx, pool)
	cancelSeed()

	if err != nil {
		log.Error("category seeding failed", "err", err)
		os.Exit(1)
	}

	prom := observability.NewProm(prometheus.DefaultRegisterer)

	router := httpx.NewRouter(log, pool, prom, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)

		defer cancel()

		err := srv.Shutdown(ctx)

		if err != nil {
			log.Error("graceful shutdown failed", "err", err)

			return
		}

		if shutdownTracer != nil {
			err = shutdownTracer(ctx)

			if err != nil {
				log.Error("tracer shutdown failed", "err", err)
			}
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}
