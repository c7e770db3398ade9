package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tourgate/internal/backend"
	"tourgate/internal/config"
	"tourgate/internal/dashboard"
	api "tourgate/internal/http"
	"tourgate/internal/logger"
	"tourgate/internal/metrics"
	"tourgate/internal/validation"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	log := logger.New()
	m := metrics.New("tourgate")

	r := api.NewRouter(api.Deps{
		Config:  cfg,
		Log:     log,
		Metrics: m,
		Backend: backend.New(cfg, log, m),
		Views:   dashboard.NewStore(),
		Forms:   validation.New(),
	})

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("gateway listening", "addr", cfg.AppAddr, "backend", cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown failed", "error", err)
	}

	log.Info("server stopped")
}
