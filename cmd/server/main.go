// Command server runs the filestream gateway: it serves a directory tree
// as chunked streaming downloads with content-disposition and
// cache-identity headers.
//
// Configuration is layered: built-in defaults, a YAML config file
// (FILESTREAM_CONFIG or ./config.yaml), then FILESTREAM_* environment
// variables. See pkg/config for the full set.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/WindowGenerator/filestream/pkg/config"
	"github.com/WindowGenerator/filestream/pkg/gateway"
	"github.com/WindowGenerator/filestream/pkg/observability"
	transporthttp "github.com/WindowGenerator/filestream/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	handler := &gateway.DirHandler{
		Root:        cfg.Files.Root,
		ChunkSize:   cfg.Files.ChunkSize,
		Disposition: cfg.Files.Disposition,
	}

	srv := transporthttp.NewServer(handler,
		transporthttp.WithAddr(cfg.Server.Addr),
		transporthttp.WithReadTimeout(cfg.Server.ReadTimeout),
		transporthttp.WithWriteTimeout(cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithLogger(logger),
		// Wrap the whole mux with the metrics middleware so file streams
		// and error responses alike are counted.
		transporthttp.WithHTTPMiddleware(observability.MetricsMiddleware),
		transporthttp.WithMount(func(mux *http.ServeMux) {
			mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok\n"))
			})
			if cfg.Observability.Metrics.Enabled {
				mux.Handle("GET "+cfg.Observability.Metrics.Path, promhttp.Handler())
			}
		}),
	)

	logger.Info("serving files",
		slog.String("root", cfg.Files.Root),
		slog.String("prefix", gateway.Prefix),
		slog.Int("chunk_size", cfg.Files.ChunkSize),
	)
	return srv.ListenAndServe()
}

// newLogger builds the process-wide slog logger at the configured level.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
