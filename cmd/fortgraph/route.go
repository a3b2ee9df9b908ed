// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/core"
	"github.com/katalvlaran/fortgraph/dijkstra"
	"github.com/katalvlaran/fortgraph/mapgen"
)

var errUnknownCastle = errors.New("unknown castle")

func newRouteCmd(a *app) *cobra.Command {
	var (
		seed     int64
		from, to string
		kingdom  bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan the shortest road journey between two castles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.generate(cmd, seed)
			if err != nil {
				return err
			}

			src, ok := w.FindCastle(from)
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownCastle, from)
			}
			dst, ok := w.FindCastle(to)
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownCastle, to)
			}

			j, err := w.Route(cmd.Context(), src, dst, a.travelOptions(w, src, kingdom)...)
			if errors.Is(err, dijkstra.ErrNoPathFound) {
				a.log.Warn("no route", zap.String("from", from), zap.String("to", to), zap.Bool("kingdom", kingdom))
				return fmt.Errorf("no route from %s to %s: %w", from, to, err)
			}
			if err != nil {
				return err
			}

			names := make([]string, len(j.Castles))
			for i, c := range j.Castles {
				names[i] = c.Name
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, strings.Join(names, " -> "))
			fmt.Fprintf(out, "roads: %d length: %.1f\n", len(j.Roads), j.Length)

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "override map.seed")
	cmd.Flags().StringVar(&from, "from", "", "name of the starting castle")
	cmd.Flags().StringVar(&to, "to", "", "name of the destination castle")
	cmd.Flags().BoolVar(&kingdom, "kingdom", false, "stay inside the starting castle's kingdom")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// travelOptions applies --kingdom relative to the castle at src and the
// configured ford factor.
func (a *app) travelOptions(w *mapgen.World, src core.NodeID, kingdom bool) []mapgen.TravelOption {
	var opts []mapgen.TravelOption
	if kingdom {
		if home, err := w.Graph.Value(src); err == nil {
			opts = append(opts, mapgen.OnlyKingdom(home.Kingdom))
		}
	}
	if f := a.cfg.Routing.FordFactor; f > 1 {
		opts = append(opts, mapgen.Fords(w.Terrain, f))
	}

	return opts
}
