// SPDX-License-Identifier: MIT
package detector

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/localcomm/community"
	"github.com/katalvlaran/localcomm/core"
)

// DetectAll runs d once per seed on the shared, read-only graph g with at most
// workers concurrent detections (workers < 1 means one per seed).
// Results are returned in seed order. The first failure cancels the
// detections that have not started yet and is returned.
//
// g must not be mutated until DetectAll returns.
func DetectAll(ctx context.Context, d Detector, g *core.Graph, seeds []string, workers int) ([]*community.Community, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if d == nil {
		return nil, fmt.Errorf("%w: nil detector", ErrInvalidConfig)
	}

	out := make([]*community.Community, len(seeds))
	eg, egctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, seed := range seeds {
		i, seed := i, seed
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			c, err := d.Detect(g, seed)
			if err != nil {
				return fmt.Errorf("detector: %s seed %q: %w", d.Name(), seed, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
