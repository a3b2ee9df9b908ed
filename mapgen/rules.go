// SPDX-License-Identifier: MIT
//
// File: rules.go
// Role: travel rules for castle routing, expressed as dijkstra.Rules closures.

package mapgen

import (
	"math"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/dijkstra"
)

// TravelOption adjusts TravelRules.
type TravelOption func(*travel)

type travel struct {
	kingdom  int
	blocked  map[core.NodeID]struct{}
	terrain  *Terrain
	fordCost float64
}

// OnlyKingdom keeps the journey inside kingdom k: castles of other kingdoms
// cannot be entered.
func OnlyKingdom(k int) TravelOption {
	return func(t *travel) { t.kingdom = k }
}

// Blocked closes the given castles (besieged, razed).
func Blocked(ids ...core.NodeID) TravelOption {
	return func(t *travel) {
		for _, id := range ids {
			t.blocked[id] = struct{}{}
		}
	}
}

// Fords makes roads whose midpoint lies in water cost factor times their
// length. A factor of +Inf closes them.
func Fords(terrain *Terrain, factor float64) TravelOption {
	return func(t *travel) {
		if terrain != nil && factor >= 1 {
			t.terrain, t.fordCost = terrain, factor
		}
	}
}

// TravelRules returns routing rules over a castle graph: roads cost their
// length, adjusted by the options.
func TravelRules(opts ...TravelOption) dijkstra.Rules[*Castle] {
	t := &travel{kingdom: NoKingdom, blocked: make(map[core.NodeID]struct{})}
	for _, opt := range opts {
		opt(t)
	}

	rules := dijkstra.Rules[*Castle]{
		Cost: func(g *core.Graph[*Castle], e core.Edge) float64 {
			a, b, err := g.Endpoints(e)
			if err != nil {
				return math.Inf(1)
			}
			d := a.Distance(b)
			if t.terrain != nil && t.crossesWater(a, b) {
				if math.IsInf(t.fordCost, 1) {
					return t.fordCost
				}
				return d * t.fordCost
			}
			return d
		},
		NodePassable: func(g *core.Graph[*Castle], n core.NodeID) bool {
			if _, closed := t.blocked[n]; closed {
				return false
			}
			if t.kingdom == NoKingdom {
				return true
			}
			c, err := g.Value(n)
			return err == nil && c.Kingdom == t.kingdom
		},
	}

	return rules
}

func (t *travel) crossesWater(a, b *Castle) bool {
	mid := a.Pos.Add(b.Pos).Scale(0.5)

	return t.terrain.KindAt(int(mid.X), int(mid.Y)) == Water
}
