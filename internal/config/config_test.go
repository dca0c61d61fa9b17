package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/recordgrid/internal/config"
	"github.com/rshade/recordgrid/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, 20, cfg.Table.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.Table.Debounce)
	assert.Equal(t, 800*time.Millisecond, cfg.Table.LoadingDelay)
	assert.Equal(t, 500, cfg.Data.Count)
	assert.Equal(t, config.DefaultSeed, cfg.Data.Seed)
	assert.Empty(t, cfg.Data.Files)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, cfg.Validate())
}

func TestDefaultPath_HonoursHomeEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.HomeEnv, dir)
	assert.Equal(t, dir, config.Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), config.DefaultPath())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(config.HomeEnv, t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.New().Table, cfg.Table)
	assert.Empty(t, cfg.Path())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
table:
  page_size: 30
logging:
  level: warn
`)
	t.Setenv(config.EnvPageSize, "40")
	t.Setenv(config.EnvLogFormat, "JSON")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, 40, cfg.Table.PageSize, "env wins over file")
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "page size too large",
			content: "table:\n  page_size: 5000\n",
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "negative debounce",
			content: "table:\n  debounce: -1s\n",
			wantErr: config.ErrInvalidDebounce,
		},
		{
			name:    "loading delay too long",
			content: "table:\n  loading_delay: 1m\n",
			wantErr: config.ErrInvalidLoadingDelay,
		},
		{
			name:    "negative count",
			content: "data:\n  count: -3\n",
			wantErr: config.ErrInvalidCount,
		},
		{
			name:    "bad level",
			content: "logging:\n  level: loud\n",
			wantErr: config.ErrInvalidLogLevel,
		},
		{
			name:    "bad format",
			content: "logging:\n  format: xml\n",
			wantErr: config.ErrInvalidLogFormat,
		},
		{
			name:    "non numeric page size env",
			content: "",
			env:     map[string]string{config.EnvPageSize: "twenty"},
			wantErr: config.ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvLogLevel: " Debug ",
		config.EnvPageSize: "7",
	}
	cfg := config.New()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 7, cfg.Table.PageSize)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	written, err := config.WriteDefault(path, false)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 20")
	assert.Contains(t, string(data), "debounce: 300ms")

	var roundTrip config.Config
	require.NoError(t, yaml.Unmarshal(data, &roundTrip))
	assert.Equal(t, config.New().Table, roundTrip.Table)

	_, err = config.WriteDefault(path, false)
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, err = config.WriteDefault(path, true)
	require.NoError(t, err)
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	tests := []struct {
		name string
		in   config.LoggingConfig
		want logging.Config
	}{
		{
			name: "stderr when no file",
			in:   config.LoggingConfig{Level: "info", Format: "console"},
			want: logging.Config{Level: "info", Format: "console", Output: logging.OutputStderr},
		},
		{
			name: "file output",
			in:   config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/x.log"},
			want: logging.Config{Level: "debug", Format: "json", Output: logging.OutputFile, File: "/tmp/x.log"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToLoggingConfig())
		})
	}
}
