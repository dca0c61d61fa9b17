package cli_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/recordgrid/internal/config"
	"github.com/rshade/recordgrid/internal/records"
)

func TestGenerate_Stdout(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "generate", "--count", "3", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Records []records.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"REC-00001", "REC-00002", "REC-00003"}, ids(doc.Records))

	again, _, err := execute(t, "generate", "--count", "3", "--seed", "7", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerate_File(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "out.yaml")

	out, _, err := execute(t, "generate", "--count", "12", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 12 records to "+path)

	recs, err := records.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, recs, 12)

	// The written file feeds straight back into list.
	listed, _, err := execute(t, "list", "--data", path, "--page-size", "5", "-o", "json")
	require.NoError(t, err)
	var doc listDoc
	require.NoError(t, json.Unmarshal([]byte(listed), &doc))
	assert.Equal(t, 12, doc.Pagination.TotalItems)
}

func TestGenerate_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "generate", "--format", "csv")
	require.ErrorIs(t, err, records.ErrUnsupportedFormat)

	_, _, err = execute(t, "generate", "--count", "-1")
	require.ErrorIs(t, err, config.ErrInvalidCount)
}
