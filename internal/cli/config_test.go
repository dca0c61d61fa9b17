package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recordgrid/internal/config"
)

func TestConfigInit_WritesDefaults(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	path := filepath.Join(home, "config.yaml")
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size: 20")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, _, err = execute(t, "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "grid.yaml")

	_, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestConfigShow(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setupCLITest(t)

		out, _, err := execute(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "# source: defaults")
		assert.Contains(t, out, "page_size: 20")
	})

	t.Run("file and environment", func(t *testing.T) {
		home := setupCLITest(t)
		path := filepath.Join(home, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("table:\n  page_size: 50\n"), 0o600))
		t.Setenv("RECORDGRID_LOG_FORMAT", "json")

		out, _, err := execute(t, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, "# source: "+path)
		assert.Contains(t, out, "page_size: 50")
		assert.Contains(t, out, "format: json")
	})
}

func TestConfigFile_DrivesList(t *testing.T) {
	home := setupCLITest(t)
	data := writeSample(t, home)
	cfg := "table:\n  page_size: 2\ndata:\n  files: [" + data + "]\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o600))

	out, _, err := execute(t, "list", "-o", "json")
	require.NoError(t, err)

	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"REC-00001", "REC-00002"}, ids(doc.Records))
	assert.Equal(t, 3, doc.Pagination.TotalPages)
}

func TestInvalidConfigFails(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("table:\n  page_size: 0\n"), 0o600))

	_, _, err := execute(t, "list")
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
}
