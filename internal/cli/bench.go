package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/bench"
	"github.com/katalvlaran/subiso/bench/store"
)

func (c *CLI) benchCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a benchmark suite and append the records",
		Long: `Run every (target, pattern) instance of a suite with each configured algorithm,
verify every witness and append one record per search to the results file
(.json flat array or .parquet).

Without --suite the built-in sweep runs: random, grid, complete, cycle and path
targets of 5..40 vertices against a random 5-vertex pattern, then path patterns
of 5..11 vertices against a random 13-vertex target.`,
		Example: `  subiso bench
  subiso bench --suite sweep.toml --results runs.parquet --parallel 8
  subiso bench --metrics-file /var/lib/node_exporter/subiso.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			suite := bench.DefaultSuite()
			if c.cfg.Suite != "" {
				s, err := bench.LoadSuite(c.cfg.Suite)
				if err != nil {
					return err
				}
				suite = s
			}
			st, err := store.Open(c.cfg.Results)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			runner := &bench.Runner{
				Logger:   logger,
				Sink:     st,
				Metrics:  bench.NewMetrics(reg),
				Parallel: c.cfg.Parallel,
			}
			prog := newProgress(logger)
			recs, err := runner.Run(ctx, suite)
			if err != nil {
				return err
			}
			prog.done("benchmark finished", "suite", suite.Name, "records", len(recs))

			if c.cfg.MetricsFile != "" {
				if err := bench.WriteTextfile(c.cfg.MetricsFile, reg); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "%s records appended", num(len(recs)))
			printFile(out, st.Path())
			if c.cfg.MetricsFile != "" {
				printFile(out, c.cfg.MetricsFile)
			}
			if aborted := countAborted(recs); aborted > 0 {
				printWarning(out, "%d searches hit the step limit or timeout", aborted)
			}
			if summary {
				fmt.Fprintln(out)
				printSummary(out, bench.Summarize(recs))
			}
			return nil
		},
	}

	cmd.Flags().String("suite", "", "TOML suite file (default: built-in sweep)")
	cmd.Flags().String("results", defaultResults, "results file (.json or .parquet)")
	cmd.Flags().Int("parallel", 0, "concurrent jobs (0 = GOMAXPROCS)")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics in textfile format")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the report of this run")

	return cmd
}

func countAborted(recs []bench.Record) int {
	n := 0
	for _, r := range recs {
		if r.Aborted {
			n++
		}
	}
	return n
}
