package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "tweetheure.db", c.SQLitePath)
	assert.Equal(t, "data.json", c.JSONPath)
	assert.Equal(t, ".session", c.SessionPath)
	assert.Equal(t, "bcrypt", c.HashAlgorithm)
	assert.Equal(t, 2*time.Second, c.MessageDelay)
	assert.Empty(t, c.DefaultBackend)
	assert.Empty(t, c.PostgresDSN)
	assert.False(t, c.AtomicWrites)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"tweetheure"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "tweetheure.db", cfg.SQLitePath)
	assert.Equal(t, 2*time.Second, cfg.MessageDelay)
}
