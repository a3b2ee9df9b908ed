// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fortgraph/mapgen"
)

func newGenerateCmd(a *app) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a world and print its castles, kingdoms and repaired roads.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.generate(cmd, seed)
			if err != nil {
				return err
			}
			printWorld(cmd.OutOrStdout(), w)

			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "override map.seed")

	return cmd
}

// generate builds the configured world; a changed --seed flag wins over map.seed.
func (a *app) generate(cmd *cobra.Command, seed int64) (*mapgen.World, error) {
	p := a.cfg.Map.Params()
	if cmd.Flags().Changed("seed") {
		p.Seed = seed
	}

	return mapgen.Generate(cmd.Context(), p, a.log)
}

func printWorld(out io.Writer, w *mapgen.World) {
	p := w.Params
	fmt.Fprintf(out, "world %s\n", w.ID)
	fmt.Fprintf(out, "seed: %d size: %dx%d scale: %d\n", p.Seed, p.Width, p.Height, p.Scale)
	fmt.Fprintf(out, "castles: %d roads: %d bridges: %d\n",
		w.Graph.NodeCount(), w.Graph.EdgeCount(), len(w.Repair.Added))

	for _, k := range w.Kingdoms {
		names := make([]string, len(k.Castles))
		for i, c := range k.Castles {
			names[i] = c.Name
		}
		fmt.Fprintf(out, "kingdom %d %s: %s\n", k.Index, k.Center, strings.Join(names, ", "))
	}

	if len(w.Repair.Added) > 0 {
		fmt.Fprintf(out, "bridges (components before repair: %d):\n", w.Repair.Components)
		for _, e := range w.Repair.Added {
			a, b, err := w.Graph.Endpoints(e)
			if err != nil {
				continue
			}
			fmt.Fprintf(out, "  %s - %s (%.1f)\n", a.Name, b.Name, a.Distance(b))
		}
	}

	fmt.Fprintf(out, "components: %d\n", len(w.Components()))
}
