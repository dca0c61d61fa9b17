package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantIDs []string
		wantErr error
	}{
		{
			name:    "json list",
			file:    "a.json",
			content: `[{"id":"REC-1","name":"A","category":"Books","status":"Active","createdAt":"2023-01-01"}]`,
			wantIDs: []string{"REC-1"},
		},
		{
			name:    "json document",
			file:    "b.json",
			content: `{"records":[{"id":"REC-1"},{"id":"REC-2"}]}`,
			wantIDs: []string{"REC-1", "REC-2"},
		},
		{
			name:    "yaml list",
			file:    "c.yaml",
			content: "- id: REC-9\n  name: Plant Pot 9\n  category: Home & Garden\n  status: Pending\n  createdAt: \"2024-02-03\"\n",
			wantIDs: []string{"REC-9"},
		},
		{
			name:    "yml document",
			file:    "d.yml",
			content: "records:\n  - id: X\n  - id: Y\n",
			wantIDs: []string{"X", "Y"},
		},
		{
			name:    "empty yaml",
			file:    "e.yaml",
			content: "",
			wantIDs: []string{},
		},
		{
			name:    "unsupported extension",
			file:    "f.csv",
			content: "id\nREC-1\n",
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "yaml mapping without records",
			file:    "h.yaml",
			content: "foo: bar\n",
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "json object without records",
			file:    "i.json",
			content: `{"items":[{"id":"REC-1"}]}`,
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "empty records key",
			file:    "j.yaml",
			content: "records: []\n",
			wantIDs: []string{},
		},
		{
			name:    "missing id",
			file:    "g.json",
			content: `[{"name":"no id"}]`,
			wantErr: ErrMissingID,
		},
		{
			name:    "duplicate id",
			file:    "h.json",
			content: `[{"id":"A"},{"id":"A"}]`,
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			recs, err := LoadFile(path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]string, 0, len(recs))
			for _, r := range recs {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[{"id":"A1"},{"id":"A2"}]`)
	b := writeFile(t, dir, "b.yaml", "- id: B1\n")

	recs, err := LoadFiles(context.Background(), []string{b, a})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "B1", recs[0].ID)
	assert.Equal(t, "A1", recs[1].ID)
	assert.Equal(t, "A2", recs[2].ID)

	dup := writeFile(t, dir, "dup.json", `[{"id":"B1"}]`)
	_, err = LoadFiles(context.Background(), []string{b, dup})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestEncodeRoundTrip(t *testing.T) {
	recs := Generate(3, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	for _, ext := range []string{".json", ".yaml"} {
		data, err := Encode(recs, ext)
		require.NoError(t, err)
		got, err := Decode(data, ext)
		require.NoError(t, err)
		assert.Equal(t, recs, got)
	}

	_, err := Encode(recs, ".xml")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
