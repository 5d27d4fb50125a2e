package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ignacioG00/clinica-go/internal/adapters/in/cli"
	"github.com/ignacioG00/clinica-go/internal/adapters/out/cache"
	"github.com/ignacioG00/clinica-go/internal/adapters/out/logger"
	"github.com/ignacioG00/clinica-go/internal/adapters/out/storage"
	"github.com/ignacioG00/clinica-go/internal/config"
	"github.com/ignacioG00/clinica-go/internal/core/domain"
	"github.com/ignacioG00/clinica-go/internal/core/ports/out"
	"github.com/ignacioG00/clinica-go/internal/core/services/clinic_service"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize the logger with the configured timezone
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":      cfg.App.Version,
		"env":          cfg.App.Env,
		"timezone":     cfg.App.Timezone,
		"clinic":       cfg.Clinic.Name,
		"configFile":   cfg.Storage.ConfigFile,
		"cacheEnabled": cfg.Cache.Enabled,
	})

	// Initialize adapters
	// Each adapter and service tags the logger with its own module name
	storageAdapter := storage.NewJSONStorageAdapter(cfg, mainLogger)

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	// Initialize the clinic service
	clinicService := clinic_service.NewClinicService(
		cfg,
		storageAdapter,
		cacheAdapter,
		mainLogger,
	)

	// Warm start from the snapshot file. A missing or malformed file
	// is reported and the session continues with the default
	// configuration and empty state.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := clinicService.LoadState(ctx); err != nil {
		var loadErr *domain.ConfigLoadError
		if errors.As(err, &loadErr) {
			log.Warn("app.state.load_failed", out.LogFields{
				"path":  loadErr.Path,
				"error": loadErr.Error(),
			})
			fmt.Printf("Could not load %s, starting with defaults.\n", loadErr.Path)
		} else {
			log.Error("app.state.load_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	// Cancel the menu loop on SIGINT/SIGTERM
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("app.shutdown.initiated", out.LogFields{
			"signal": sig.String(),
		})
		cancel()
	}()

	menu := cli.NewMenuController(
		clinicService,
		cfg,
		mainLogger,
		os.Stdin,
		os.Stdout,
	)

	if err := menu.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("app.menu.failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	log.Info("app.stopped", out.LogFields{
		"sessionId": clinicService.SessionID(),
	})
}
