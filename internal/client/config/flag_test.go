package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK",
			args:        []string{"cmd", "-s", "/tmp/state.db", "-d", "postgres://u:p@h/db", "-t", "token1", "-p", "datasets", "-i", "5"},
			expectPanic: false,
			expected: &Config{
				StatePath:        "/tmp/state.db",
				UploadsDSN:       "postgres://u:p@h/db",
				AuthToken:        "token1",
				UploadPath:       "datasets",
				ProbeStepTimeout: 5 * time.Second,
			}},
		{name: "Test2 incorrect timeout",
			args: []string{"cmd", "-i", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
