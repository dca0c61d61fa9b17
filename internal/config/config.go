package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/recordgrid/internal/debounce"
	"github.com/rshade/recordgrid/internal/pagination"
	"github.com/rshade/recordgrid/internal/records"
)

const (
	// HomeEnv overrides the configuration directory.
	HomeEnv = "RECORDGRID_HOME"

	dirName  = ".recordgrid"
	fileName = "config.yaml"

	// DefaultLoadingDelay is how long the table shows its loading state on startup.
	DefaultLoadingDelay = 800 * time.Millisecond

	// maxLoadingDelay bounds the startup delay.
	maxLoadingDelay = 10 * time.Second

	// maxDebounce bounds the search debounce window.
	maxDebounce = 5 * time.Second

	// DefaultSeed seeds the generator when no data files are configured.
	DefaultSeed uint64 = 42
)

// Validation errors.
var (
	ErrInvalidPageSize     = errors.New("table.page_size must be between 1 and 1000")
	ErrInvalidDebounce     = errors.New("table.debounce must be between 0 and 5s")
	ErrInvalidLoadingDelay = errors.New("table.loading_delay must be between 0 and 10s")
	ErrInvalidCount        = errors.New("data.count must not be negative")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of trace, debug, info, warn, error")
	ErrInvalidLogFormat    = errors.New("logging.format must be console or json")
	ErrConfigExists        = errors.New("config file already exists")
)

// Config is the whole configuration file.
type Config struct {
	Table   TableConfig   `yaml:"table"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`

	// path is the file this config was loaded from, if any.
	path string
}

// TableConfig controls the data table.
type TableConfig struct {
	PageSize     int           `yaml:"page_size"`
	Debounce     time.Duration `yaml:"debounce"`
	LoadingDelay time.Duration `yaml:"loading_delay"`
}

// DataConfig selects the records to show.
type DataConfig struct {
	// Count and Seed drive the synthetic generator when Files is empty.
	Count int      `yaml:"count"`
	Seed  uint64   `yaml:"seed"`
	Files []string `yaml:"files,omitempty"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Table: TableConfig{
			PageSize:     pagination.DefaultPageSize,
			Debounce:     debounce.DefaultWindow,
			LoadingDelay: DefaultLoadingDelay,
		},
		Data: DataConfig{
			Count: records.DefaultCount,
			Seed:  DefaultSeed,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// Dir returns the configuration directory.
func Dir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// DefaultPath returns the configuration file location.
func DefaultPath() string {
	return filepath.Join(Dir(), fileName)
}

// Path is the file the config was loaded from, or "" for pure defaults.
func (c *Config) Path() string {
	return c.path
}

// Load reads path (DefaultPath when empty) over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := New()
	switch _, err := os.Stat(path); {
	case err == nil:
		if mergeErr := MergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
		cfg.path = path
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Table.PageSize < pagination.MinPageSize || c.Table.PageSize > pagination.MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Table.PageSize)
	}
	if c.Table.Debounce < 0 || c.Table.Debounce > maxDebounce {
		return fmt.Errorf("%w: got %s", ErrInvalidDebounce, c.Table.Debounce)
	}
	if c.Table.LoadingDelay < 0 || c.Table.LoadingDelay > maxLoadingDelay {
		return fmt.Errorf("%w: got %s", ErrInvalidLoadingDelay, c.Table.LoadingDelay)
	}
	if c.Data.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Data.Count)
	}
	return c.Logging.Validate()
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteDefault writes the default config to path (DefaultPath when empty).
// An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	data, err := New().Marshal()
	if err != nil {
		return path, fmt.Errorf("encoding default config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return path, fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return path, fmt.Errorf("writing config file %s: %w", path, err)
	}
	return path, nil
}
