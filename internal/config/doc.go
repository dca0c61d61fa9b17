// Package config loads recordgrid's YAML configuration.
//
// The file lives at $RECORDGRID_HOME/config.yaml, or ~/.recordgrid/config.yaml
// when RECORDGRID_HOME is unset. Missing files and missing keys fall back to
// the defaults returned by New. A handful of RECORDGRID_* environment
// variables override the file.
package config
