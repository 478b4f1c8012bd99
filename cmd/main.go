package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/artemis/internal/catalog"
	"github.com/UnknownOlympus/artemis/internal/config"
	"github.com/UnknownOlympus/artemis/internal/geocoding"
	"github.com/UnknownOlympus/artemis/internal/metrics"
	"github.com/UnknownOlympus/artemis/internal/resolver"
	"github.com/UnknownOlympus/artemis/internal/sampler"
	"github.com/UnknownOlympus/artemis/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Load the fallback catalog: the built-in curated list, or a file override.
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load fallback catalog: %v", err)
		}
	}
	logger.InfoContext(ctx, "Fallback catalog loaded", "entries", len(cat.Entries()))

	// Create reverse-geocoding provider using factory pattern based on configuration.
	// This allows runtime selection between different providers (Google, Nominatim, etc.)
	providerConfig := geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		APIKey:    cfg.APIKey,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	}

	geoProvider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create reverse-geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Reverse-geocoding provider initialized", "type", cfg.ProviderType)

	// Assemble the selection pipeline: sampler -> resolver -> selector.
	src := sampler.NewSource()
	smp, err := sampler.NewSampler(sampler.DefaultTiers(), src)
	if err != nil {
		log.Fatalf("Failed to create coordinate sampler: %v", err)
	}

	res := resolver.NewResolver(geoProvider, cfg.ProviderType, appMetrics, cat.Keywords(), cfg.HomeCountry, logger)
	selector := service.NewSelector(logger, smp, res, cat, src, appMetrics, cfg.MaxAttempts)

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the HTTP server in a goroutine to allow main to listen for signals.
	go startServer(ctx, logger, reg, selector, cfg.Port)

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startServer starts an HTTP server that serves fresh targets along with
// health check and metrics endpoints. It listens on the specified port and
// logs the server's status and any errors encountered.
//
// Parameters:
// - ctx: A context.Context for managing cancellation and timeouts.
// - log: A logger for logging server events and errors.
// - reg: A registry with Prometheus collectors.
// - selector: The target selector serving GET /target.
// - port: The port number on which the server will listen.
func startServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	selector *service.Selector,
	port int,
) {
	http.HandleFunc("/target", func(writer http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Selection is bound to the request context: a client that walks away
		// cancels any in-flight geocode call.
		target, err := selector.SelectTarget(req.Context())
		if err != nil {
			log.WarnContext(req.Context(), "Selection abandoned by client", "error", err)
			http.Error(writer, "request cancelled", http.StatusRequestTimeout)
			return
		}

		writer.Header().Set("Content-Type", "application/json")
		if err = json.NewEncoder(writer).Encode(target); err != nil {
			log.ErrorContext(req.Context(), "failed to write reply", "error", err)
		}
	})
	http.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		log.DebugContext(ctx, "Performing health checks...")
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}
	})
	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting HTTP server", "port", port)
	readTimeout := 5
	writeTimeout := 30
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      http.DefaultServeMux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.ErrorContext(ctx, "HTTP server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
