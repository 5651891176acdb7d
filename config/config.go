// SPDX-License-Identifier: MIT
// Package config loads the YAML configuration of a detection run.
//
// A file only needs the keys it changes; everything else keeps the value of
// Default(). Unknown keys are rejected so that a typo does not silently fall
// back to a default.
//
//	algorithm: clauset
//	workers: 4
//	log_level: debug
//	clauset:
//	  target_size: 50
//	synthetic:
//	  nodes: 200
//	  communities: 8
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/localcomm/bridging"
	"github.com/katalvlaran/localcomm/builder"
	"github.com/katalvlaran/localcomm/detector"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Algorithm names the detector (see detector.Kinds).
	Algorithm string `yaml:"algorithm"`

	// Workers bounds concurrent detections; 0 means one per seed.
	Workers int `yaml:"workers"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`

	// Seed drives the synthetic generator.
	Seed int64 `yaml:"seed"`

	// Per-algorithm sections: neighborhood, bridge_bounding, bagrow, clauset.
	detector.Settings `yaml:",inline"`

	// Synthetic describes the generated benchmark graph.
	Synthetic builder.MixtureParams `yaml:"synthetic"`
}

// Default returns bridge bounding with ELB at threshold 0.5 over the default
// synthetic mixture.
func Default() *Config {
	return &Config{
		Algorithm: string(detector.KindBridgeBounding),
		LogLevel:  logrus.InfoLevel.String(),
		Seed:      1,
		Settings:  detector.DefaultSettings(),
		Synthetic: builder.DefaultMixtureParams(),
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes data over Default() and validates the result.
// Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var err error
	bad := func(format string, args ...interface{}) {
		err = multierror.Append(err, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if _, perr := detector.ParseKind(c.Algorithm); perr != nil {
		bad("algorithm %q", c.Algorithm)
	}
	if c.Workers < 0 {
		bad("workers %d < 0", c.Workers)
	}
	if _, perr := logrus.ParseLevel(c.LogLevel); perr != nil {
		bad("log_level %q", c.LogLevel)
	}
	if c.Neighborhood.Hops < 0 {
		bad("neighborhood.hops %d < 0", c.Neighborhood.Hops)
	}
	if _, perr := bridging.ParseMeasure(c.BridgeBounding.Measure); perr != nil {
		bad("bridge_bounding.measure %q", c.BridgeBounding.Measure)
	}
	if c.Bagrow.MaxSize < 1 {
		bad("bagrow.max_size %d < 1", c.Bagrow.MaxSize)
	}
	if c.Clauset.TargetSize < 1 {
		bad("clauset.target_size %d < 1", c.Clauset.TargetSize)
	}
	if serr := c.Synthetic.Validate(); serr != nil {
		err = multierror.Append(err, fmt.Errorf("%w: synthetic: %v", ErrInvalidConfig, serr))
	}

	return err
}

// Level returns the configured log level, InfoLevel if it does not parse.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// Detector builds the configured algorithm with log attached.
func (c *Config) Detector(log *logrus.Entry) (detector.Detector, error) {
	kind, err := detector.ParseKind(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return detector.New(kind, c.Settings, detector.WithLogger(log))
}
