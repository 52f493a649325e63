package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/manzanit0/googletoolkit/cmd/gateway/api"
	"github.com/manzanit0/googletoolkit/pkg/config"
	"github.com/manzanit0/googletoolkit/pkg/distancematrix"
	"github.com/manzanit0/googletoolkit/pkg/logger"
	"github.com/manzanit0/googletoolkit/pkg/translation"
	"github.com/manzanit0/googletoolkit/pkg/whttp"
)

const ServiceName = "gateway"

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}

	logger.InitGlobalSlog(ServiceName, cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server shutdown abruptly", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("server exited")
}

func run(ctx context.Context, cfg *config.Config) error {
	ch := cache.New(cfg.CacheTTL, 3*cfg.CacheTTL)

	var distances *api.DistancesController
	if err := cfg.ValidateDistanceMatrix(); err != nil {
		slog.Warn("distances endpoint disabled", "error", err.Error())
	} else {
		client, err := distancematrix.NewClient(cfg.DistanceBackend, whttp.NewLoggingClient(), cfg.GoogleMapsAPIKey)
		if err != nil {
			return fmt.Errorf("create distance matrix client: %w", err)
		}

		distances = api.NewDistancesController(client, ch)
	}

	var translations *api.TranslationsController
	if err := cfg.ValidateTranslation(); err != nil {
		slog.Warn("translations endpoint disabled", "error", err.Error())
	} else {
		client, err := translation.NewGoogleClientFromCredentialsFile(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return fmt.Errorf("create translation client: %w", err)
		}

		defer func() {
			if err := client.Close(); err != nil {
				slog.Error("close translation client", "error", err.Error())
			}
		}()

		translations = api.NewTranslationsController(client, ch)
	}

	if distances == nil && translations == nil {
		return fmt.Errorf("neither the distance matrix nor the translation API are configured")
	}

	r := api.NewRouter(distances, translations, cfg.Debug)

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: r}
	errs := make(chan error, 1)
	go func() {
		slog.Info(fmt.Sprintf("serving HTTP on :%s", cfg.Port))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}

		close(errs)
	}()

	// Listen for OS interrupt
	select {
	case <-ctx.Done():
	case err := <-errs:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server shutdown gracefully")
	return nil
}
