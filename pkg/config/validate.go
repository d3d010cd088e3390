package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, fmt.Errorf("server.addr is required"))
	}

	if c.Files.Root == "" {
		errs = append(errs, fmt.Errorf("files.root is required"))
	}

	if c.Files.ChunkSize <= 0 {
		errs = append(errs, fmt.Errorf("files.chunk_size must be > 0, got %d", c.Files.ChunkSize))
	}

	switch c.Files.Disposition {
	case "attachment", "inline":
		// valid
	default:
		errs = append(errs, fmt.Errorf("files.disposition must be \"attachment\" or \"inline\", got %q", c.Files.Disposition))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		// valid
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level))
	}

	if c.Observability.Metrics.Enabled && !strings.HasPrefix(c.Observability.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("observability.metrics.path must start with \"/\", got %q", c.Observability.Metrics.Path))
	}

	return errors.Join(errs...)
}
