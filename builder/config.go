// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn          ("0","1","2",...)
//   • rng         = nil                  (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn
//   • left/right  = "a" / "b"            (Barbell clique labels)
//   • log         = discard

package builder

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator; consulted only for weighted graphs.
	weightFn WeightFn

	// Barbell clique prefixes.
	leftPrefix  string
	rightPrefix string

	// Warnings raised while generating mixtures.
	log *logrus.Entry
}

const (
	defaultLeftPrefix  = "a"
	defaultRightPrefix = "b"
)

// newBuilderConfig applies opts over the defaults, last option wins.
// Empty prefixes resolve back to the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		log:         logrus.NewEntry(&logrus.Logger{Out: io.Discard}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// edgeWeight returns the weight for the next edge of g.
func (c builderConfig) edgeWeight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
