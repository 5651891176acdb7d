// SPDX-License-Identifier: MIT
// Package: localcomm/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with `%w`; option constructors (WithX)
//     are the only place allowed to panic.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, clique size, node count)
// is smaller than the minimum accepted by the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability or density outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (nil constructor, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidMixture indicates inconsistent community-mixture parameters.
var ErrInvalidMixture = errors.New("builder: invalid mixture parameters")

// builderErrorf wraps a sentinel with "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
