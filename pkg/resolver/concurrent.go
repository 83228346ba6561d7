package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ResolveAll resolves names concurrently, at most the configured concurrency
// at a time. Results are in input order. The first failure cancels the
// remaining work and is returned.
func (f *Factory) ResolveAll(ctx context.Context, names []string) ([]any, error) {
	out := make([]any, len(names))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := f.Resolve(name)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
