package records

import (
	"errors"
	"fmt"
	"strings"
)

// Record is one row of the dataset. All fields are strings; CreatedAt is an
// ISO 8601 date (YYYY-MM-DD) so lexical order is chronological order.
type Record struct {
	ID        string `json:"id"        yaml:"id"`
	Name      string `json:"name"      yaml:"name"`
	Category  string `json:"category"  yaml:"category"`
	Status    string `json:"status"    yaml:"status"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
}

// Field selects one column of a Record.
type Field string

// Record fields, in display order.
const (
	FieldID        Field = "id"
	FieldName      Field = "name"
	FieldCategory  Field = "category"
	FieldStatus    Field = "status"
	FieldCreatedAt Field = "createdAt"
)

// ErrUnknownField is returned by ParseField for names that select no column.
var ErrUnknownField = errors.New("unknown record field")

// Fields returns every field in display order.
func Fields() []Field {
	return []Field{FieldID, FieldName, FieldCategory, FieldStatus, FieldCreatedAt}
}

// Value returns the field's value in r.
func (f Field) Value(r Record) string {
	switch f {
	case FieldID:
		return r.ID
	case FieldName:
		return r.Name
	case FieldCategory:
		return r.Category
	case FieldStatus:
		return r.Status
	case FieldCreatedAt:
		return r.CreatedAt
	default:
		return ""
	}
}

// Title is the column header for f.
func (f Field) Title() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldName:
		return "Name"
	case FieldCategory:
		return "Category"
	case FieldStatus:
		return "Status"
	case FieldCreatedAt:
		return "Created At"
	default:
		return string(f)
	}
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	switch f {
	case FieldID, FieldName, FieldCategory, FieldStatus, FieldCreatedAt:
		return true
	default:
		return false
	}
}

// ParseField maps a user-supplied name to a Field. Matching ignores case and
// accepts created_at / created as aliases for createdAt.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id":
		return FieldID, nil
	case "name":
		return FieldName, nil
	case "category":
		return FieldCategory, nil
	case "status":
		return FieldStatus, nil
	case "createdat", "created_at", "created":
		return FieldCreatedAt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}
