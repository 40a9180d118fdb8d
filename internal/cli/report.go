package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/bench"
	"github.com/katalvlaran/subiso/bench/store"
)

func (c *CLI) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [results-file]",
		Short: "Summarize benchmark records",
		Long: `Aggregate a results file into average, minimum and maximum runtime per
graph type, density, pattern size, target size and algorithm, followed by the
naive-over-RI speed-up wherever both algorithms completed.`,
		Example: `  subiso report
  subiso report runs.parquet`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.Results
			if len(args) == 1 {
				path = args[0]
			}
			st, err := store.Open(path)
			if err != nil {
				return err
			}
			recs, err := st.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				printWarning(out, "no records in %s", path)
				return nil
			}
			loggerFromContext(cmd.Context()).Debug("loaded records", "file", path, "count", len(recs))

			printSummary(out, bench.Summarize(recs))
			return nil
		},
	}

	cmd.Flags().String("results", defaultResults, "results file (.json or .parquet)")

	return cmd
}

// printSummary prints the runtime table and, when any pair exists, the
// speed-up table.
func printSummary(w io.Writer, sums []bench.Summary) {
	printTitle(w, "Runtime")
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			dash(s.GraphType),
			strconv.FormatFloat(s.Density, 'g', -1, 64),
			strconv.Itoa(s.PatternSize),
			strconv.Itoa(s.Size),
			s.Algorithm,
			fmt.Sprintf("%d/%d", s.Found, s.Runs-s.Aborted),
			strconv.Itoa(s.Aborted),
			seconds(s.Mean),
			seconds(s.Min),
			seconds(s.Max),
			strconv.FormatFloat(s.MeanSteps, 'f', 0, 64),
		})
	}
	printTable(w,
		[]string{"Graph", "Density", "k", "n", "Algorithm", "Found", "Aborted", "Mean", "Min", "Max", "Steps"},
		rows, 6, 7, 8, 9, 10)

	ups := bench.SpeedUps(sums)
	if len(ups) == 0 {
		return
	}
	fmt.Fprintln(w)
	printTitle(w, "Speed-up (naive / ri)")
	rows = rows[:0]
	for _, u := range ups {
		rows = append(rows, []string{
			dash(u.GraphType),
			strconv.FormatFloat(u.Density, 'g', -1, 64),
			strconv.Itoa(u.PatternSize),
			strconv.Itoa(u.Size),
			seconds(u.Naive),
			seconds(u.RI),
			fmt.Sprintf("%.1f×", u.Factor),
		})
	}
	printTable(w, []string{"Graph", "Density", "k", "n", "Naive", "RI", "Factor"}, rows, 4, 5, 6)
}

// seconds formats a runtime in seconds with a unit fitting its magnitude.
func seconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
