package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, c.StatePath)
	assert.Empty(t, c.UploadsDSN)
	assert.Empty(t, c.AuthToken)
	assert.Equal(t, "uploads", c.UploadPath)
	assert.Equal(t, 10*time.Second, c.ProbeStepTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "uploads", cfg.UploadPath)
	assert.Equal(t, 10*time.Second, cfg.ProbeStepTimeout)
}
