package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name       string
		isTTY      bool
		env        map[string]string
		forceColor bool
		noColor    bool
		plain      bool
		want       OutputMode
	}{
		{name: "terminal", isTTY: true, want: OutputModeInteractive},
		{name: "pipe", isTTY: false, want: OutputModePlain},
		{name: "pipe with force color", isTTY: false, forceColor: true, want: OutputModeStyled},
		{name: "plain flag", isTTY: true, plain: true, want: OutputModePlain},
		{name: "no color flag", isTTY: true, noColor: true, want: OutputModePlain},
		{name: "NO_COLOR env", isTTY: true, env: map[string]string{"NO_COLOR": "1"}, want: OutputModePlain},
		{name: "dumb terminal", isTTY: true, env: map[string]string{"TERM": "dumb"}, want: OutputModePlain},
		{name: "CI terminal", isTTY: true, env: map[string]string{"CI": "true"}, want: OutputModeStyled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			got := detectOutputMode(tt.isTTY, getenv, tt.forceColor, tt.noColor, tt.plain)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "plain", OutputModePlain.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}
