// SPDX-License-Identifier: MIT
// Package detector grows one local community around a seed vertex.
//
// This file declares the Detector contract, sentinel errors, per-algorithm
// configuration structs and the shared functional options.
package detector

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// Sentinel errors for detection.
var (
	// ErrGraphNil is returned when Detect is called with a nil graph.
	ErrGraphNil = errors.New("detector: graph is nil")

	// ErrInvalidConfig is returned by constructors for out-of-range settings.
	ErrInvalidConfig = errors.New("detector: invalid configuration")

	// ErrUnknownKind is returned by New and ParseKind for an unknown algorithm name.
	ErrUnknownKind = errors.New("detector: unknown algorithm")
)

// resultID is the id given to every detected community.
const resultID = 1

// Detector finds the local community of seed in g.
//
// Implementations only read g and keep no state between calls, so one
// Detector may serve concurrent calls on the same unchanging graph.
// A seed missing from g yields an error wrapping community.ErrVertexNotInGraph.
type Detector interface {
	// Name returns the algorithm name (see Kind).
	Name() string

	// Detect returns a fresh Community owned by the caller.
	Detect(g *core.Graph, seed string) (*community.Community, error)
}

// Option configures behavior shared by every detector.
type Option func(*options)

type options struct {
	log *logrus.Entry
}

// WithLogger sets the entry used for debug traces and soft-failure warnings.
// A nil entry keeps the default discard logger.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(kind Kind, opts []Option) options {
	o := options{log: logrus.NewEntry(&logrus.Logger{Out: io.Discard})}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.WithField("algorithm", string(kind))

	return o
}

// NeighborhoodConfig configures the k-hop neighborhood detector.
type NeighborhoodConfig struct {
	// Hops is the maximum hop distance from the seed (>= 0).
	Hops int `yaml:"hops"`
}

// BridgeBoundingConfig configures the bridge-bounding flood fill.
type BridgeBoundingConfig struct {
	// Measure selects the edge bridging score ("elb" or "elb2").
	Measure string `yaml:"measure"`

	// Threshold is the largest score an edge may have and still be crossed.
	Threshold float64 `yaml:"threshold"`
}

// BagrowConfig configures the outwardness-driven detector.
type BagrowConfig struct {
	// MaxSize caps the community size (>= 1).
	MaxSize int `yaml:"max_size"`
}

// ClausetConfig configures the local-modularity detector.
type ClausetConfig struct {
	// TargetSize stops growth once the community reaches it (>= 1).
	TargetSize int `yaml:"target_size"`
}

// Defaults.
const (
	DefaultHops       = 1
	DefaultMeasure    = "elb"
	DefaultThreshold  = 0.5
	DefaultMaxSize    = 500
	DefaultTargetSize = 100
)

// seedCommunity validates the inputs shared by every detector and returns a
// community holding only seed.
func seedCommunity(g *core.Graph, seed string) (*community.Community, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	c, err := community.New(resultID, g)
	if err != nil {
		return nil, err
	}
	if err = c.Add(seed); err != nil {
		return nil, fmt.Errorf("detector: seed: %w", err)
	}

	return c, nil
}
