package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Value(t *testing.T) {
	r := Record{ID: "REC-00001", Name: "Yoga Mat 1", Category: "Sports", Status: "Active", CreatedAt: "2023-04-05"}

	assert.Equal(t, "REC-00001", FieldID.Value(r))
	assert.Equal(t, "Yoga Mat 1", FieldName.Value(r))
	assert.Equal(t, "Sports", FieldCategory.Value(r))
	assert.Equal(t, "Active", FieldStatus.Value(r))
	assert.Equal(t, "2023-04-05", FieldCreatedAt.Value(r))
	assert.Empty(t, Field("bogus").Value(r))
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{"id", FieldID, false},
		{"Name", FieldName, false},
		{" CATEGORY ", FieldCategory, false},
		{"status", FieldStatus, false},
		{"createdAt", FieldCreatedAt, false},
		{"created_at", FieldCreatedAt, false},
		{"created", FieldCreatedAt, false},
		{"price", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestFields_Titles(t *testing.T) {
	titles := make([]string, 0, len(Fields()))
	for _, f := range Fields() {
		titles = append(titles, f.Title())
	}
	assert.Equal(t, []string{"ID", "Name", "Category", "Status", "Created At"}, titles)
}

func TestFacets(t *testing.T) {
	recs := []Record{
		{ID: "1", Category: "Toys", Status: "Active"},
		{ID: "2", Category: "Books", Status: "Active"},
		{ID: "3", Category: "Toys", Status: "Pending"},
	}
	assert.Equal(t, []string{"Books", "Toys"}, Facets(recs, FieldCategory))
	assert.Equal(t, []string{"Active", "Pending"}, Facets(recs, FieldStatus))
	assert.Empty(t, Facets(nil, FieldStatus))
}
