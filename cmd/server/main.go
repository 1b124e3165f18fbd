package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington/internal/activities/handler"
	activitymetrics "mergington/internal/activities/metrics"
	"mergington/internal/activities/service"
	"mergington/internal/activities/store"
	"mergington/internal/activities/tracer"
	"mergington/internal/platform/config"
	"mergington/internal/platform/health"
	"mergington/internal/platform/logger"
	"mergington/internal/web"
	"mergington/pkg/platform/middleware/request"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal service packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log.Info("initializing activities service",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
	)

	st := store.NewInMemory(store.Seed()...)

	m := activitymetrics.New()
	m.ActivitiesTotal.Set(float64(st.Len()))
	seedParticipants := 0
	for _, activity := range store.Seed() {
		seedParticipants += len(activity.Participants)
	}
	m.ParticipantsTotal.Set(float64(seedParticipants))

	svc := service.NewService(st, log,
		service.WithMetrics(m),
		service.WithTracer(tracer.NewOTel()),
	)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("activities_store", func() error {
		_, err := st.List(context.Background())
		return err
	})

	r := chi.NewRouter()
	r.Use(request.Recovery(log))
	r.Use(request.RequestID)
	r.Use(request.Metadata)
	r.Use(request.Logger(log))
	r.Use(request.Timeout(cfg.RequestTimeout))
	r.Use(request.BodyLimit(cfg.MaxBodyBytes))
	r.Use(request.LatencyMiddleware(request.NewMetrics()))

	handler.New(svc, log).Register(r)
	healthHandler.Register(r)
	web.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
