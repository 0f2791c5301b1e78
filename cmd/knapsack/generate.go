package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vcoppe/knapsack/knapsack"
)

// newGenerateCmd builds the `knapsack generate` subcommand: sample a
// clustered instance and write it as JSON to a file or stdout.
func newGenerateCmd() *cobra.Command {
	var v = viper.New()

	var cmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a random clustered knapsack instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd, v)

			var opts = knapsack.GeneratorOptions{
				Seed:         v.GetUint64("seed"),
				NbItems:      v.GetInt("nb-items"),
				NbClusters:   v.GetInt("nb-clusters"),
				Capacity:     v.GetInt64("capacity"),
				MinWeight:    v.GetInt64("min-weight"),
				MaxWeight:    v.GetInt64("max-weight"),
				WeightStdDev: v.GetInt64("weight-std-dev"),
				MinProfit:    v.GetInt64("min-profit"),
				MaxProfit:    v.GetInt64("max-profit"),
				ProfitStdDev: v.GetInt64("profit-std-dev"),
			}

			var inst, err = knapsack.Generate(opts)
			if err != nil {
				return err
			}

			var output = v.GetString("output")
			if output == "" {
				return inst.WriteJSON(os.Stdout)
			}
			if err = knapsack.SaveInstance(inst, output); err != nil {
				return err
			}
			log.WithField("path", output).Info("instance written")

			return nil
		},
	}

	var defaults = knapsack.DefaultGeneratorOptions()
	cmd.Flags().Uint64P("seed", "s", 0, "RNG seed (0 selects a fixed default)")
	cmd.Flags().IntP("nb-items", "n", defaults.NbItems, "number of items to produce")
	cmd.Flags().IntP("nb-clusters", "c", defaults.NbClusters, "number of clusters of similar items")
	cmd.Flags().Int64("capacity", defaults.Capacity, "capacity of the knapsack")
	cmd.Flags().Int64("min-weight", defaults.MinWeight, "minimum weight")
	cmd.Flags().Int64("max-weight", defaults.MaxWeight, "maximum weight")
	cmd.Flags().Int64("weight-std-dev", defaults.WeightStdDev, "weight std deviation within a cluster")
	cmd.Flags().Int64("min-profit", defaults.MinProfit, "minimum profit")
	cmd.Flags().Int64("max-profit", defaults.MaxProfit, "maximum profit")
	cmd.Flags().Int64("profit-std-dev", defaults.ProfitStdDev, "profit std deviation within a cluster")
	cmd.Flags().StringP("output", "o", "", "output path (default: stdout)")

	return cmd
}
