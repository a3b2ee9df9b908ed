// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fortgraph/dijkstra"
)

func newRoutesCmd(a *app) *cobra.Command {
	var (
		seed    int64
		from    string
		kingdom bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Plan journeys from one castle to every other castle concurrently.",
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
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Routing.Workers
			}

			queries := make([]dijkstra.Query, 0, w.Graph.NodeCount()-1)
			for _, n := range w.Graph.Nodes() {
				if n != src {
					queries = append(queries, dijkstra.Query{From: src, To: n})
				}
			}
			routes, err := w.Routes(cmd.Context(), queries, workers, a.travelOptions(w, src, kingdom)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found := 0
			for _, r := range routes {
				dst, err := w.Graph.Value(r.Query.To)
				if err != nil {
					return err
				}
				if !r.Found() {
					fmt.Fprintf(out, "%s: unreachable\n", dst.Name)
					continue
				}
				found++
				fmt.Fprintf(out, "%s: roads: %d length: %.1f\n", dst.Name, len(r.Edges), r.Cost)
			}
			a.log.Debug("routes planned",
				zap.String("from", from),
				zap.Int("queries", len(queries)),
				zap.Int("found", found),
				zap.Int("workers", workers),
			)

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "override map.seed")
	cmd.Flags().StringVar(&from, "from", "", "name of the starting castle")
	cmd.Flags().BoolVar(&kingdom, "kingdom", false, "stay inside the starting castle's kingdom")
	cmd.Flags().IntVar(&workers, "workers", 0, "override routing.workers (0 means GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
