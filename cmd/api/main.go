// @title Vet Clinic API
// @version 1.0
// @description Clientes, especies, razas, veterinarios, animales y turnos.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"vet-clinic/internal/adapters/auth/jwtauth"
	"vet-clinic/internal/adapters/capabilities/claims"
	"vet-clinic/internal/adapters/capabilities/remote"
	"vet-clinic/internal/adapters/storage"
	"vet-clinic/internal/config"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/metrics"
	"vet-clinic/internal/ports/auth"
	"vet-clinic/internal/ports/capabilities"
	"vet-clinic/internal/router"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger.New(logger.Options{Level: logger.Error, Output: os.Stderr}).Error("fatal", logger.Fields{"err": err})
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath, os.LookupEnv)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := storage.Open(ctx, cfg.DB.Driver, cfg.DB.DSN, cfg.DB.AutoMigrate)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("store close failed", logger.Fields{"err": err})
		}
	}()

	// sin secreto, modo dev: identidad por headers X-Debug-*
	var verifier auth.AuthVerifier
	if cfg.Auth.JWTSecret != "" {
		verifier = jwtauth.NewVerifier(cfg.Auth.JWTSecret)
	} else {
		log.Warn("JWT_SECRET not set, accepting X-Debug-User-ID headers", nil)
	}

	var caps capabilities.Resolver = claims.Resolver{AllowAll: cfg.Capabilities.AllowAll}
	if cfg.Capabilities.URL != "" {
		rc, err := remote.NewResolver(remote.Config{
			BaseURL:  cfg.Capabilities.URL,
			APIKey:   cfg.Capabilities.APIKey,
			Timeout:  cfg.Capabilities.Timeout,
			AllowAll: cfg.Capabilities.AllowAll,
		})
		if err != nil {
			return err
		}
		caps = rc
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:       log,
			AuthVerifier: verifier,
			Capabilities: caps,
			Store:        st,
			Metrics:      metrics.New(),
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr, "db_driver": cfg.DB.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
