package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcoppe/knapsack/dd"
	"github.com/vcoppe/knapsack/knapsack"
)

// newSolveCmd builds the `knapsack solve` subcommand: load an instance,
// assemble the problem bundle and run the diagram branch-and-bound search.
func newSolveCmd() *cobra.Command {
	var v = viper.New()

	var cmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve a knapsack instance with decision-diagram branch-and-bound",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)

			return runSolve(v)
		},
	}

	cmd.Flags().StringP("instance", "i", "", "path to the instance file (required)")
	cmd.Flags().IntP("width", "w", dd.DefaultWidth, "max number of nodes in a layer")
	cmd.Flags().Uint64P("timeout", "t", 60, "time budget in seconds (0: unlimited)")
	cmd.Flags().Int("workers", 0, "parallel workers (0: one per CPU)")
	cmd.Flags().Int("meta-items", 0, "solve a compressed meta-problem with this many weight clusters (0: off)")
	cmd.Flags().String("compression", "exact", "state canonicalization: exact or passthrough")
	_ = cmd.MarkFlagRequired("instance")

	return cmd
}

func runSolve(v *viper.Viper) error {
	var inst, err = knapsack.LoadInstance(v.GetString("instance"))
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"items":    inst.NbItems,
		"capacity": inst.Capacity,
	}).Debug("instance loaded")

	var pb *knapsack.Problem
	if pb, err = knapsack.NewProblem(inst); err != nil {
		return err
	}

	var (
		comp dd.Compression[knapsack.State]
		rel  = knapsack.NewRelaxation(pb)
	)
	if meta := v.GetInt("meta-items"); meta > 0 {
		var copts = knapsack.DefaultCompressionOptions(meta)
		switch v.GetString("compression") {
		case "exact":
			copts.Strategy = knapsack.Reachability
		case "passthrough":
			copts.Strategy = knapsack.Passthrough
		default:
			return fmt.Errorf("unknown compression strategy %q", v.GetString("compression"))
		}

		var c *knapsack.Compression
		if c, err = knapsack.NewCompression(pb, copts); err != nil {
			return err
		}
		comp = c
		// The diagrams compile the surrogate, so the bound must come from
		// the surrogate's weights to stay admissible for it.
		rel = knapsack.NewRelaxation(c.MetaProblem())
		log.WithField("meta_items", meta).
			Info("solving the compressed meta-problem; the result bounds the true optimum")
	}

	var opts = dd.Options{
		Width:     v.GetInt("width"),
		TimeLimit: time.Duration(v.GetUint64("timeout")) * time.Second,
		Workers:   v.GetInt("workers"),
	}

	var solver *dd.Solver[knapsack.State]
	solver, err = dd.NewSolver[knapsack.State](
		pb, rel, knapsack.Ranking{}, knapsack.Dominance{}, comp, opts)
	if err != nil {
		return err
	}

	var start = time.Now()
	var completion dd.Completion
	if completion, err = solver.Maximize(); err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("search finished")

	fmt.Printf("is exact %v\n", completion.IsExact)
	if !completion.HasIncumbent {
		fmt.Println("no solution found within the budget")

		return nil
	}
	fmt.Printf("best value %d\n", completion.BestValue)

	var sol, _ = solver.BestSolution()
	fmt.Printf("solution: %s\n", formatSolution(sol, inst.NbItems))

	return nil
}

// formatSolution renders the decision vector as space-separated 0/1 values
// in original item order.
func formatSolution(sol []dd.Decision, nbItems int) string {
	var values = make([]int64, nbItems)
	for _, d := range sol {
		values[d.Variable] = d.Value
	}

	var b strings.Builder
	for i, val := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", val)
	}

	return b.String()
}
