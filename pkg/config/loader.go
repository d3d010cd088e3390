package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, FILESTREAM_CONFIG env, ./config.yaml,
//     /etc/filestream/config.yaml)
//  3. Environment variable overrides
//  4. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. FILESTREAM_CONFIG environment variable
// 3. ./config.yaml in the current directory
// 4. /etc/filestream/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("FILESTREAM_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"config.yaml",
		"/etc/filestream/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps FILESTREAM_* environment variables to config
// fields. Unparseable values are ignored in favor of the current value.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FILESTREAM_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("FILESTREAM_ROOT"); v != "" {
		cfg.Files.Root = v
	}
	if v := os.Getenv("FILESTREAM_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Files.ChunkSize = n
		}
	}
	if v := os.Getenv("FILESTREAM_DISPOSITION"); v != "" {
		cfg.Files.Disposition = v
	}
	if v := os.Getenv("FILESTREAM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FILESTREAM_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}
	if v := os.Getenv("FILESTREAM_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Observability.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("FILESTREAM_METRICS_PATH"); v != "" {
		cfg.Observability.Metrics.Path = v
	}
}
