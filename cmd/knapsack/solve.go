package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/solver"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one instance read from file or stdin",
		Long: `Input: a header line "n capacity" followed by n lines "value weight".
Text output: "value flag" (flag 1 when proven optimal), then the 0/1 taken
flags in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSolve,
	}

	d := config.Default()
	f := cmd.Flags()
	f.String("strategy", d.Strategy, "auto|greedy|dp|bnb|ip")
	f.String("heuristic", d.Heuristic, "greedy order: density|weight|value|unique-weight|catalog")
	f.String("bound", d.Bound, "branch-and-bound relaxation: fractional|capacity|none")
	f.Int64("dp-cell-limit", d.DPCellLimit, "largest DP table in cells (negative: unlimited)")
	f.Duration("time-limit", d.TimeLimit, "branch-and-bound time budget (0: unlimited)")
	f.StringP("output", "o", d.Output, "text|json|yaml")

	for key, flag := range map[string]string{
		config.KeyStrategy:    "strategy",
		config.KeyHeuristic:   "heuristic",
		config.KeyBound:       "bound",
		config.KeyDPCellLimit: "dp-cell-limit",
		config.KeyTimeLimit:   "time-limit",
		config.KeyOutput:      "output",
	} {
		// Lookup cannot miss: every flag is declared above.
		_ = a.v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	inst, src, err := readInstance(cmd, args)
	if err != nil {
		return err
	}
	a.log.V(1).Info("instance loaded", "source", src, "items", len(inst.Items), "capacity", inst.Capacity)

	ctx := logr.NewContext(cmd.Context(), a.log)
	sol, err := solver.Solve(ctx, inst.Items, inst.Capacity, cfg.Options()...)
	if err != nil {
		return fmt.Errorf("solve %s: %w", src, err)
	}

	return instance.Write(cmd.OutOrStdout(), sol, instance.Format(cfg.Output))
}

// readInstance parses args[0], or stdin when no file (or "-") is given.
func readInstance(cmd *cobra.Command, args []string) (instance.Instance, string, error) {
	var (
		r   io.Reader = cmd.InOrStdin()
		src           = "stdin"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return instance.Instance{}, "", err
		}
		defer f.Close()
		r, src = f, args[0]
	}

	inst, err := instance.Parse(r)
	if err != nil {
		return instance.Instance{}, "", fmt.Errorf("%s: %w", src, err)
	}

	return inst, src, nil
}
