package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterfaceName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{name: "common wlan name", input: "wlan0", wantError: false},
		{name: "predictable name", input: "wlp3s0", wantError: false},
		{name: "usb adapter name", input: "wlx00c0cab12345", wantError: false},
		{name: "monitor suffix", input: "wlan0mon", wantError: false},
		{name: "dots and dashes", input: "wl.an-0", wantError: false},
		{name: "empty", input: "", wantError: true},
		{name: "too long", input: strings.Repeat("w", 16), wantError: true},
		{name: "embedded space", input: "wlan 0", wantError: true},
		{name: "path traversal", input: "../wlan0", wantError: true},
		{name: "leading dash", input: "-wlan0", wantError: true},
		{name: "shell metacharacter", input: "wlan0;rm", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewInterfaceName(tt.input)

			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidInterfaceName)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Mode
		wantError bool
	}{
		{name: "monitor", input: "monitor", want: ModeMonitor},
		{name: "managed", input: "managed", want: ModeManaged},
		{name: "unknown", input: "master", wantError: true},
		{name: "empty", input: "", wantError: true},
		{name: "uppercase is rejected", input: "Monitor", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)

			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidMode)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTransitionSucceeded(t *testing.T) {
	name, err := NewInterfaceName("wlan0")
	require.NoError(t, err)

	assert.True(t, Transition{Interface: name, Result: ResultSuccess}.Succeeded())
	assert.False(t, Transition{Interface: name, Result: ResultFailed}.Succeeded())
	assert.False(t, Transition{Interface: name, Result: ResultFallbackAttempted}.Succeeded())
	assert.False(t, Transition{Interface: name, Result: ResultInterfaceNotFound}.Succeeded())
}
