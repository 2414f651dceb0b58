package cli

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/ringitem/scaler"
	"github.com/arloliu/ringitem/source"
)

var (
	scalerWorkers   int
	scalerAnonymous bool
	scalerTotal     bool
)

func init() {
	rootCmd.AddCommand(scalersCmd)
	scalersCmd.Flags().IntVarP(&scalerWorkers, "workers", "w", runtime.GOMAXPROCS(0), "Number of aggregation goroutines (1 runs sequentially)")
	scalersCmd.Flags().BoolVar(&scalerAnonymous, "anonymous", false, "Count scaler events without a body header under source 0")
	scalersCmd.Flags().BoolVar(&scalerTotal, "total", false, "Print only the grand total")
}

var scalersCmd = &cobra.Command{
	Use:   "scalers FILE...",
	Short: "Sum periodic scaler counters per source and channel",
	Long: "Adds up the counters of every periodic scaler event across all files,\n" +
		"keyed by body header source id and scaler index.",
	Args: cobra.MinimumNArgs(1),
	RunE: runScalers,
}

func runScalers(cmd *cobra.Command, args []string) error {
	opts := []scaler.Option{scaler.WithWorkers(scalerWorkers)}
	if scalerAnonymous {
		opts = append(opts, scaler.WithAnonymousSource())
	}

	agg, err := scaler.NewAggregator(opts...)
	if err != nil {
		return err
	}

	walkErr := eachSource(args, func(src *source.Source) error {
		if scalerWorkers == 1 {
			return agg.Add(src.Bytes())
		}

		return agg.AddParallel(cmd.Context(), src.Bytes())
	})

	totals := agg.Totals()
	logger.Debugf("aggregated %s scaler events into %d counters", humanize.Comma(int64(agg.Events())), len(totals))

	out := cmd.OutOrStdout()
	if scalerTotal {
		fmt.Fprintln(out, totals.Sum())
		return walkErr
	}

	for _, e := range totals.Sorted() {
		fmt.Fprintf(out, "(%d, %d): %d\n", e.SourceID, e.Index, e.Total)
	}

	return walkErr
}
