package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variable overrides.
const (
	EnvLogLevel  = "RECORDGRID_LOG_LEVEL"
	EnvLogFormat = "RECORDGRID_LOG_FORMAT"
	EnvPageSize  = "RECORDGRID_PAGE_SIZE"
)

// ApplyEnv overrides config values from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvPageSize)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidPageSize, EnvPageSize, v)
		}
		c.Table.PageSize = n
	}
	return nil
}
