package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/graphio"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	density float64 // edge probability, random graphs only
	seed    int64   // RNG seed
	prefix  string  // vertex ID prefix
	output  string  // destination file
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <kind> <n>",
		Short: "Write a generated graph to a file",
		Long: fmt.Sprintf(`Build a graph of the given kind over n vertices and write it as YAML or JSON.

Kinds: %s. Grids use the largest square side ⌊√n⌋.`, strings.Join(builder.Kinds(), ", ")),
		Example: `  subiso generate random 40 --density 0.3 --seed 7 -o target.yaml
  subiso generate path 5 --prefix p -o pattern.json`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return builder.Kinds(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("generate: n must be an integer: %w", err)
			}
			ctor, err := builder.Topology(args[0], n, opts.density)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{
				builder.WithSeed(opts.seed),
				builder.WithPrefixIDs(opts.prefix),
			}, ctor)
			if err != nil {
				return err
			}

			if err := graphio.Save(opts.output, g); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated", "kind", args[0], "n", n, "seed", opts.seed)

			out := cmd.OutOrStdout()
			printSuccess(out, "%s graph: %s vertices, %s edges", strings.ToLower(args[0]),
				num(g.VertexCount()), num(g.EdgeCount()))
			printFile(out, opts.output)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&opts.density, "density", "p", 0.3, "edge probability for random graphs")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "v", "vertex ID prefix")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "graph.yaml", "output file (.yaml, .yml, .json)")

	return cmd
}
