// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: PlanRoutes fans independent queries out over one read-only graph.

package dijkstra

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fortgraph/core"
)

// Query is one source/destination request.
type Query struct {
	From core.NodeID
	To   core.NodeID
}

// Route is the answer to a Query. Err holds ErrNoPathFound when To is
// unreachable; Edges is then nil and Cost is 0.
type Route struct {
	Query Query
	Edges []core.Edge
	Cost  float64
	Err   error
}

// Found reports whether a path exists.
func (r Route) Found() bool { return r.Err == nil }

// PlanRoutes answers every query concurrently, one Engine per query, using at
// most workers goroutines (workers <= 0 means GOMAXPROCS). Results keep the
// order of queries.
//
// Unreachable destinations are recorded on their Route and do not fail the
// batch. Any other error (bad rules, unknown node, negative cost, ctx
// cancellation) cancels the remaining work and is returned.
func PlanRoutes[T any](ctx context.Context, g *core.Graph[T], rules Rules[T], queries []Query, workers int) ([]Route, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	routes := make([]Route, len(queries))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, q := range queries {
		eg.Go(func() error {
			routes[i] = Route{Query: q}
			en, err := New(g, q.From, rules, WithContext(gctx))
			if err != nil {
				return err
			}
			if err = en.Run(); err != nil {
				return err
			}
			edges, err := en.Path(q.To)
			if errors.Is(err, ErrNoPathFound) {
				routes[i].Err = err
				return nil
			}
			if err != nil {
				return err
			}
			routes[i].Edges = edges
			routes[i].Cost, _ = en.Distance(q.To)

			return nil
		})
	}

	return routes, eg.Wait()
}
