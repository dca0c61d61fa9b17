package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/recordgrid/internal/cli"
	"github.com/rshade/recordgrid/pkg/version"
)

func TestRun(t *testing.T) {
	t.Setenv("RECORDGRID_HOME", t.TempDir())
	t.Setenv("RECORDGRID_LOG_LEVEL", "error")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"unknown command", []string{"frobnicate"}, 1},
		{"bad flag value", []string{"list", "--page", "0"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}

func TestRootCommand(t *testing.T) {
	root := cli.NewRootCmd(version.GetVersion())
	assert.Equal(t, "recordgrid", root.Use)
	assert.Equal(t, "dev", root.Version)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"browse", "list", "generate", "config"})
}
