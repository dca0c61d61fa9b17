package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Loader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported record file format")
	ErrMissingID         = errors.New("record has no id")
	ErrDuplicateID       = errors.New("duplicate record id")
)

// recordsKey is the key holding the list in a wrapped document.
const recordsKey = "records"

// document is the wrapped file shape: {"records": [...]}. A bare list is also accepted.
type document struct {
	Records []Record `json:"records" yaml:"records"`
}

// LoadFile reads records from a .json, .yaml or .yml file.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	recs, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err = Validate(recs); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return recs, nil
}

// Decode parses data in the format named by ext (".json", ".yaml", ".yml").
func Decode(data []byte, ext string) ([]Record, error) {
	var unmarshal func([]byte, any) error
	switch strings.ToLower(ext) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	var list []Record
	if err := unmarshal(data, &list); err == nil {
		if list == nil {
			list = []Record{}
		}
		return list, nil
	}

	var keys map[string]any
	if err := unmarshal(data, &keys); err != nil {
		return nil, err
	}
	if _, ok := keys[recordsKey]; !ok {
		return nil, fmt.Errorf("%w: expected a list or a %q key", ErrUnsupportedFormat, recordsKey)
	}

	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Records == nil {
		doc.Records = []Record{}
	}
	return doc.Records, nil
}

// Validate checks that every record has a unique, non-empty ID.
func Validate(recs []Record) error {
	seen := make(map[string]int, len(recs))
	for i, r := range recs {
		if strings.TrimSpace(r.ID) == "" {
			return fmt.Errorf("%w at index %d", ErrMissingID, i)
		}
		if prev, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w %q at index %d (first seen at %d)", ErrDuplicateID, r.ID, i, prev)
		}
		seen[r.ID] = i
	}
	return nil
}

// LoadFiles loads every path concurrently and concatenates the results in
// argument order. IDs must be unique across all files.
func LoadFiles(ctx context.Context, paths []string) ([]Record, error) {
	parts := make([][]Record, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			recs, err := LoadFile(path)
			if err != nil {
				return err
			}
			parts[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]Record, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode writes recs in the format named by ext, wrapped in a document.
func Encode(recs []Record, ext string) ([]byte, error) {
	doc := document{Records: recs}
	switch strings.ToLower(ext) {
	case ".json", "json":
		return json.MarshalIndent(doc, "", "  ")
	case ".yaml", ".yml", "yaml":
		return yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
