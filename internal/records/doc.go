// Package records defines the record model shown by the grid and the ways
// records get into the program: a deterministic synthetic generator, YAML/JSON
// file loading, and a file watcher that reloads on change.
package records
