// Package config provides unified configuration for the filestream gateway.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (FILESTREAM_ prefix)
//  4. Validation
package config

import "time"

// Config holds all configuration for the filestream gateway.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Files         FilesConfig         `yaml:"files"`
	Observability ObservabilityConfig `yaml:"observability"`
	Log           LogConfig           `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`             // default: ":8080"
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // default: 30s
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // default: 0 (unbounded, suits large downloads)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 30s
}

// FilesConfig holds settings for the served directory tree.
type FilesConfig struct {
	Root        string `yaml:"root"`         // required: directory to serve
	ChunkSize   int    `yaml:"chunk_size"`   // body-frame payload threshold, default: 65536
	Disposition string `yaml:"disposition"`  // "attachment" or "inline", default: "attachment"
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"; default: "info"
}

// Defaults returns the built-in default configuration.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    0,
			ShutdownTimeout: 30 * time.Second,
		},
		Files: FilesConfig{
			ChunkSize:   64 * 1024,
			Disposition: "attachment",
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
