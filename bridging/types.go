// SPDX-License-Identifier: MIT
package bridging

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for bridging measures.
var (
	// ErrUnsupportedMeasure is returned for an unrecognized Measure.
	ErrUnsupportedMeasure = errors.New("bridging: unsupported measure")

	// ErrGraphNil is returned when a nil graph is passed to NewCalculator.
	ErrGraphNil = errors.New("bridging: graph is nil")

	// ErrEdgeNil is returned when a nil edge is scored.
	ErrEdgeNil = errors.New("bridging: edge is nil")
)

// Measure selects the edge bridging score.
type Measure string

const (
	// ELB is edge local bridging: 1 minus the share of common neighbors.
	ELB Measure = "elb"

	// ELB2 blends an edge's ELB with the mean ELB of the edges around it.
	ELB2 Measure = "elb2"
)

// Alpha is the weight of the edge's own ELB inside ELB2.
const Alpha = 0.5

// Valid reports whether m is a supported measure.
func (m Measure) Valid() bool { return m == ELB || m == ELB2 }

// String implements fmt.Stringer.
func (m Measure) String() string { return string(m) }

// ParseMeasure maps a case-insensitive name onto a Measure.
func ParseMeasure(s string) (Measure, error) {
	m := Measure(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMeasure, s)
	}

	return m, nil
}
