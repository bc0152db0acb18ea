package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/bound"
	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/solver"
)

func (a *app) strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List strategies, greedy heuristics and bound kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range solver.AllStrategies {
				fmt.Fprintf(tw, "%s\t%s\n", s, s.Describe())
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			heuristics := make([]string, len(greedy.AllOrders))
			for i, o := range greedy.AllOrders {
				heuristics[i] = o.String()
			}
			bounds := []string{bound.FractionalBound.String(), bound.CapacityRelaxed.String(), bound.NoBound.String()}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nheuristics: %s\n", strings.Join(heuristics, ", "))
			fmt.Fprintf(out, "bounds: %s\n", strings.Join(bounds, ", "))

			return nil
		},
	}
}
