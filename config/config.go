// Package config loads CLI settings from defaults, an optional YAML file and
// VALVENET_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable pointing at a YAML file.
const EnvConfig = "VALVENET_CONFIG"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full settings tree of the CLI.
type Config struct {
	Logging Logging `yaml:"logging"`
	Search  Search  `yaml:"search"`
	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

// Logging selects the log level and output format.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Search holds the planner inputs: where to start, how much time each agent
// has, how many agents and workers, and the search knobs.
type Search struct {
	Start          string        `yaml:"start"`
	Budget         int           `yaml:"budget"`
	Agents         int           `yaml:"agents"`
	Workers        int           `yaml:"workers"`
	Timeout        time.Duration `yaml:"timeout"`
	ActivationCost int           `yaml:"activation_cost"`
	UpperBound     bool          `yaml:"upper_bound"`
	Seed           bool          `yaml:"seed"`
}

// Default returns the built-in settings: start AA, 30 time units, one
// agent, one worker, no timeout, activation cost 1, bound and seed on.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Search.Start = "AA"
	c.Search.Budget = 30
	c.Search.Agents = 1
	c.Search.Workers = 1
	c.Search.ActivationCost = 1
	c.Search.UpperBound = true
	c.Search.Seed = true
	return c
}

// Load starts from Default, overlays the YAML file at path (or at
// $VALVENET_CONFIG when path is empty), then applies environment overrides.
// A missing or unreadable file named explicitly is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := applyEnv(&c); err != nil {
		return c, err
	}

	return c, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("VALVENET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VALVENET_LOG_PRETTY"); v == "1" || v == "true" {
		c.Logging.Pretty = true
	}
	if v := os.Getenv("VALVENET_START"); v != "" {
		c.Search.Start = v
	}
	if v := os.Getenv("VALVENET_METRICS"); v == "1" || v == "true" {
		c.Metrics.Enabled = true
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"VALVENET_BUDGET", &c.Search.Budget},
		{"VALVENET_AGENTS", &c.Search.Agents},
		{"VALVENET_WORKERS", &c.Search.Workers},
		{"VALVENET_ACTIVATION_COST", &c.Search.ActivationCost},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", e.key, err)
		}
		*e.dst = n
	}
	if v := os.Getenv("VALVENET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: VALVENET_TIMEOUT: %w", err)
		}
		c.Search.Timeout = d
	}

	return nil
}

// Validate reports the first setting the planner or logger would reject.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	s := c.Search
	switch {
	case s.Start == "":
		return fmt.Errorf("%w: empty start site", ErrInvalid)
	case s.Budget < 0:
		return fmt.Errorf("%w: budget %d", ErrInvalid, s.Budget)
	case s.Agents != 1 && s.Agents != 2:
		return fmt.Errorf("%w: agents must be 1 or 2, got %d", ErrInvalid, s.Agents)
	case s.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalid, s.Workers)
	case s.Timeout < 0:
		return fmt.Errorf("%w: timeout %s", ErrInvalid, s.Timeout)
	case s.ActivationCost < 0:
		return fmt.Errorf("%w: activation cost %d", ErrInvalid, s.ActivationCost)
	}

	return nil
}
