// Command knapsack generates and solves 0/1 knapsack instances with a
// decision-diagram branch-and-bound solver.
package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)

	var root = &cobra.Command{
		Use:           "knapsack",
		Short:         "Generate and solve 0/1 knapsack instances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	root.AddCommand(newGenerateCmd(), newSolveCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// bindFlags exposes every flag of cmd through viper with the KNAPSACK env
// prefix, so e.g. KNAPSACK_WIDTH=500 preconfigures --width.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	v.SetEnvPrefix("KNAPSACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
}
