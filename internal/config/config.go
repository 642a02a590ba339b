package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/printify/gcode"
)

type Config struct {
	LogLevel    string  `envconfig:"GCODE_LOG_LEVEL" default:"info"`
	FeedPolicy  string  `envconfig:"GCODE_FEED_POLICY" default:"reject"`
	DefaultFeed float64 `envconfig:"GCODE_DEFAULT_FEED" default:"0"`
	Modal       bool    `envconfig:"GCODE_MODAL" default:"false"`
	Jobs        int     `envconfig:"GCODE_JOBS" default:"4"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := gcode.ParseFeedPolicy(c.FeedPolicy); err != nil {
		return err
	}
	if c.DefaultFeed < 0 {
		return fmt.Errorf("default feed must be >= 0: %v", c.DefaultFeed)
	}
	if c.Jobs <= 0 {
		return fmt.Errorf("jobs must be > 0: %d", c.Jobs)
	}
	return nil
}

// Options converts the configuration into estimator options. It must only be
// called on a valid configuration.
func (c *Config) Options() []gcode.Option {
	policy, _ := gcode.ParseFeedPolicy(c.FeedPolicy)
	return []gcode.Option{
		gcode.WithFeedPolicy(policy),
		gcode.WithDefaultFeed(c.DefaultFeed),
		gcode.WithModal(c.Modal),
	}
}
