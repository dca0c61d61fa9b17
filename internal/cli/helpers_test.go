package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/recordgrid/internal/cli"
)

// sampleRecords is a small dataset with one record per category and status mix.
const sampleRecords = `records:
  - {id: REC-00001, name: Laptop Stand, category: Electronics, status: Active, createdAt: "2024-03-01"}
  - {id: REC-00002, name: Cookbook, category: Books, status: Pending, createdAt: "2023-07-15"}
  - {id: REC-00003, name: Desk Lamp, category: Home, status: Active, createdAt: "2022-11-30"}
  - {id: REC-00004, name: Board Game, category: Toys, status: Archived, createdAt: "2024-01-09"}
  - {id: REC-00005, name: Notebook, category: Books, status: Active, createdAt: "2022-02-20"}
`

// setupCLITest isolates config and logging from the developer's environment.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("RECORDGRID_HOME", home)
	t.Setenv("RECORDGRID_LOG_LEVEL", "error")
	t.Setenv("RECORDGRID_PAGE_SIZE", "")
	return home
}

// writeSample writes sampleRecords into dir and returns its path.
func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRecords), 0o600))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
