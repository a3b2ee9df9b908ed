// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: read-only World queries (lookup, components, single and batch routing).

package mapgen

import (
	"context"

	"github.com/katalvlaran/fortgraph/bfs"
	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/dijkstra"
)

// Journey is a planned route between two castles.
type Journey struct {
	From, To core.NodeID
	Castles  []*Castle
	Roads    []core.Edge
	Length   float64
}

// Castles returns every castle in placement order.
func (w *World) Castles() []*Castle { return w.Graph.Values() }

// FindCastle returns the node of the castle named name.
func (w *World) FindCastle(name string) (core.NodeID, bool) {
	for i, c := range w.Graph.Values() {
		if c.Name == name {
			return core.NodeID(i), true
		}
	}

	return core.InvalidNode, false
}

// Components returns the connected components of the road network; a
// generated world has exactly one.
func (w *World) Components() [][]core.NodeID {
	return bfs.Components(w.Graph)
}

// Route plans the cheapest journey from one castle to another under the
// given travel options. An unreachable destination yields
// dijkstra.ErrNoPathFound.
func (w *World) Route(ctx context.Context, from, to core.NodeID, opts ...TravelOption) (*Journey, error) {
	en, err := dijkstra.New(w.Graph, from, TravelRules(opts...), dijkstra.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if err = en.Run(); err != nil {
		return nil, err
	}
	roads, err := en.Path(to)
	if err != nil {
		return nil, err
	}
	nodes, err := en.PathNodes(to)
	if err != nil {
		return nil, err
	}

	j := &Journey{From: en.Source(), To: to, Roads: roads, Castles: make([]*Castle, 0, len(nodes))}
	j.Length, _ = en.Distance(to)
	for _, n := range nodes {
		c, err := w.Graph.Value(n)
		if err != nil {
			return nil, err
		}
		j.Castles = append(j.Castles, c)
	}

	return j, nil
}

// Routes plans many journeys concurrently with up to workers goroutines.
func (w *World) Routes(ctx context.Context, queries []dijkstra.Query, workers int, opts ...TravelOption) ([]dijkstra.Route, error) {
	return dijkstra.PlanRoutes(ctx, w.Graph, TravelRules(opts...), queries, workers)
}
