package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/contactbook/internal/auth"
	"github.com/mmynk/contactbook/internal/config"
	"github.com/mmynk/contactbook/internal/httpapi"
	"github.com/mmynk/contactbook/internal/service"
	"github.com/mmynk/contactbook/internal/storage/sqlite"
	"github.com/mmynk/contactbook/pkg/logging"
)

func main() {
	logger := logging.Setup()

	if err := run(logger); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.Seed.Enabled {
		if err := store.Seed(ctx, cfg.Seed.Samples, auth.HashPassword); err != nil {
			return err
		}
		slog.Info("Database seeded", "samples", cfg.Seed.Samples)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Key, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TTL)
	authService := service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger)
	if cfg.Seed.Enabled && cfg.Seed.Username != "" {
		if err := authService.EnsureUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var staticDir string
	if cfg.StaticPath != "" {
		if staticDir, err = filepath.Abs(cfg.StaticPath); err != nil {
			return err
		}
		slog.Info("Serving static files", "path", staticDir)
	}

	router := httpapi.NewRouter(httpapi.Options{
		Contacts:    service.NewContactService(store),
		Categories:  service.NewCategoryService(store),
		Auth:        authService,
		JWT:         jwtManager,
		Registry:    reg,
		CORSOrigins: cfg.CORSOrigins,
		StaticDir:   staticDir,
	})

	// h2c serves HTTP/2 prior-knowledge clients without TLS.
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "address", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("Server stopped")
	return nil
}
