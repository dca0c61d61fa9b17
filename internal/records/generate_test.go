package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	recs := Generate(25, 7, now)

	require.Len(t, recs, 25)
	assert.Equal(t, "REC-00001", recs[0].ID)
	assert.Equal(t, "REC-00025", recs[24].ID)
	require.NoError(t, Validate(recs))

	for i, r := range recs {
		assert.Contains(t, Categories, r.Category)
		assert.Contains(t, Statuses, r.Status)
		assert.Regexp(t, `^.+ \d+$`, r.Name)
		assert.Equal(t, FormatID(i+1), r.ID)

		created, err := time.Parse(DateLayout, r.CreatedAt)
		require.NoError(t, err)
		assert.False(t, created.Before(epoch), "created %s before epoch", r.CreatedAt)
		assert.False(t, created.After(now), "created %s after now", r.CreatedAt)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Generate(50, 42, now), Generate(50, 42, now))
	assert.NotEqual(t, Generate(50, 42, now), Generate(50, 43, now))
}

func TestGenerate_Empty(t *testing.T) {
	assert.Empty(t, Generate(0, 1, time.Now()))
	assert.Empty(t, Generate(-3, 1, time.Now()))
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "REC-00007", FormatID(7))
	assert.Equal(t, "REC-12345", FormatID(12345))
}
