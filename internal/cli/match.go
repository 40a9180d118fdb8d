package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/render"
	"github.com/katalvlaran/subiso/subiso"
)

// errNoEmbedding makes `subiso match` exit non-zero when the pattern does
// not embed, so scripts can branch on the exit status.
var errNoEmbedding = errors.New("no embedding")

// IsSilent reports whether err was already reported on stdout and needs
// only a non-zero exit status.
func IsSilent(err error) bool {
	return errors.Is(err, errNoEmbedding)
}

func (c *CLI) matchCommand() *cobra.Command {
	var (
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "match <target> <pattern>",
		Short: "Search for an embedding of pattern into target",
		Long: `Load two graph files (.yaml, .yml or .json) and search for an embedding of the
pattern into the target. On success the mapping is printed and verified; with
--output the target is also drawn with the embedding highlighted.`,
		Example: `  subiso match target.yaml pattern.yaml
  subiso match -a naive --max-steps 100000 target.json pattern.json
  subiso match target.yaml pattern.yaml -o match.svg`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, pattern, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			res, alg, err := c.search(ctx, target, pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.Found {
				if !quiet {
					printFailure(out, "%s does not embed into %s", args[1], args[0])
					printKeyValue(out, "algorithm", alg.String())
					printKeyValue(out, "expanded", num(res.Stats.Expanded))
				}
				return errNoEmbedding
			}
			if err := subiso.Verify(target, pattern, res.Mapping); err != nil {
				return fmt.Errorf("match: witness rejected: %w", err)
			}

			if !quiet {
				printSuccess(out, "%s embeds into %s", args[1], args[0])
				printMatch(out, alg, res)
			}
			if output != "" {
				if err := writeRender(ctx, output, target, pattern, res.Mapping); err != nil {
					return err
				}
				if !quiet {
					printFile(out, output)
				}
			}
			return nil
		},
	}

	addSearchFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "also render the target with the embedding (.dot, .svg, .png)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing; report through the exit status")

	return cmd
}

// addSearchFlags registers the flags bound to algorithm, max_steps and timeout.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", defaultAlgorithm, "matching strategy (naive, ri)")
	cmd.Flags().Int64("max-steps", 0, "abort after this many expanded states (0 = unlimited)")
	cmd.Flags().Duration("timeout", 0, "abort after this long (0 = none)")
}

// search runs the configured strategy with the configured limits.
func (c *CLI) search(ctx context.Context, target, pattern *core.Graph) (*subiso.Result, subiso.Algorithm, error) {
	logger := loggerFromContext(ctx)

	alg, err := subiso.ParseAlgorithm(c.cfg.Algorithm)
	if err != nil {
		return nil, "", err
	}
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	logger.Debug("searching", "algorithm", alg, "target", target.VertexCount(), "pattern", pattern.VertexCount(),
		"max_steps", c.cfg.MaxSteps, "timeout", c.cfg.Timeout)
	prog := newProgress(logger)

	res, err := subiso.Find(alg, target, pattern,
		subiso.WithContext(ctx), subiso.WithMaxSteps(c.cfg.MaxSteps))
	if err != nil {
		if res != nil {
			prog.done("search stopped", "expanded", res.Stats.Expanded)
		}
		return nil, alg, err
	}
	prog.done("search finished", "found", res.Found, "expanded", res.Stats.Expanded,
		"rejected", res.Stats.Rejected, "backtracks", res.Stats.Backtracks)

	return res, alg, nil
}

func loadPair(targetPath, patternPath string) (*core.Graph, *core.Graph, error) {
	target, err := graphio.Load(targetPath)
	if err != nil {
		return nil, nil, fmt.Errorf("target: %w", err)
	}
	pattern, err := graphio.Load(patternPath)
	if err != nil {
		return nil, nil, fmt.Errorf("pattern: %w", err)
	}
	return target, pattern, nil
}

func printMatch(w io.Writer, alg subiso.Algorithm, res *subiso.Result) {
	printKeyValue(w, "algorithm", alg.String())
	if len(res.Order) > 0 {
		printKeyValue(w, "order", fmt.Sprint(res.Order))
	}
	printKeyValue(w, "expanded", num(res.Stats.Expanded))
	printKeyValue(w, "backtracks", num(res.Stats.Backtracks))

	rows := make([][]string, 0, len(res.Mapping))
	for _, p := range res.Mapping.Keys() {
		rows = append(rows, []string{p, res.Mapping[p]})
	}
	if len(rows) > 0 {
		printTable(w, []string{"Pattern", "Target"}, rows)
	}
}

// writeRender draws target with m highlighted into path; the format follows
// the extension.
func writeRender(ctx context.Context, path string, target, pattern *core.Graph, m subiso.Mapping) error {
	f, err := render.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	var opts render.Options
	if pattern != nil {
		opts = render.Options{Pattern: pattern, Labels: true}
	}
	data, err := render.Render(ctx, render.ToDOT(target, m, opts), f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
