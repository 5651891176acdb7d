// SPDX-License-Identifier: MIT
package detector

import (
	"fmt"
	"strings"
)

// Kind names one of the five detection algorithms.
type Kind string

const (
	KindNeighborhood   Kind = "neighborhood"
	KindBridgeBounding Kind = "bridgebounding"
	KindBagrow         Kind = "bagrow"
	KindClauset        Kind = "clauset"
	KindLWP            Kind = "lwp"
)

// Kinds lists every algorithm in a stable order.
func Kinds() []Kind {
	return []Kind{KindNeighborhood, KindBridgeBounding, KindBagrow, KindClauset, KindLWP}
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Settings carries the configuration of every algorithm; New reads only the
// section matching the requested Kind.
type Settings struct {
	Neighborhood   NeighborhoodConfig   `yaml:"neighborhood"`
	BridgeBounding BridgeBoundingConfig `yaml:"bridge_bounding"`
	Bagrow         BagrowConfig         `yaml:"bagrow"`
	Clauset        ClausetConfig        `yaml:"clauset"`
}

// DefaultSettings returns the default configuration of every algorithm.
func DefaultSettings() Settings {
	return Settings{
		Neighborhood:   NeighborhoodConfig{Hops: DefaultHops},
		BridgeBounding: BridgeBoundingConfig{Measure: DefaultMeasure, Threshold: DefaultThreshold},
		Bagrow:         BagrowConfig{MaxSize: DefaultMaxSize},
		Clauset:        ClausetConfig{TargetSize: DefaultTargetSize},
	}
}

// New builds the detector for kind from s.
func New(kind Kind, s Settings, opts ...Option) (Detector, error) {
	switch kind {
	case KindNeighborhood:
		return NewNeighborhood(s.Neighborhood, opts...)
	case KindBridgeBounding:
		return NewBridgeBounding(s.BridgeBounding, opts...)
	case KindBagrow:
		return NewBagrow(s.Bagrow, opts...)
	case KindClauset:
		return NewClauset(s.Clauset, opts...)
	case KindLWP:
		return NewLWP(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
