package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("VALVENET_BUDGET", "")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, 30, c.Search.Budget)
	require.NoError(t, c.Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valvenet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
search:
  budget: 26
  agents: 2
  timeout: 1500ms
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, 26, c.Search.Budget)
	assert.Equal(t, 2, c.Search.Agents)
	assert.Equal(t, 1500*time.Millisecond, c.Search.Timeout)
	assert.Equal(t, "AA", c.Search.Start, "unset keys keep their defaults")
	assert.True(t, c.Search.UpperBound)

	t.Setenv(EnvConfig, path)
	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 26, c.Search.Budget)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("VALVENET_LOG_LEVEL", "warn")
	t.Setenv("VALVENET_START", "ZZ")
	t.Setenv("VALVENET_WORKERS", "8")
	t.Setenv("VALVENET_TIMEOUT", "2s")
	t.Setenv("VALVENET_METRICS", "true")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.Equal(t, "ZZ", c.Search.Start)
	assert.Equal(t, 8, c.Search.Workers)
	assert.Equal(t, 2*time.Second, c.Search.Timeout)
	assert.True(t, c.Metrics.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvConfig, "")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("search: [1, 2"), 0o600))
	_, err = Load(bad)
	require.Error(t, err)

	t.Setenv("VALVENET_AGENTS", "two")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"level":      func(c *Config) { c.Logging.Level = "loud" },
		"start":      func(c *Config) { c.Search.Start = "" },
		"budget":     func(c *Config) { c.Search.Budget = -1 },
		"agents":     func(c *Config) { c.Search.Agents = 3 },
		"workers":    func(c *Config) { c.Search.Workers = 0 },
		"timeout":    func(c *Config) { c.Search.Timeout = -time.Second },
		"activation": func(c *Config) { c.Search.ActivationCost = -2 },
	}
	for name, mutate := range cases {
		mutate := mutate
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
