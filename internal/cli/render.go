package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/graphio"
	"github.com/katalvlaran/subiso/subiso"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	pattern string // pattern file; empty draws the plain target
	output  string // destination; format from extension
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <target>",
		Short: "Draw a graph, highlighting an embedding",
		Long: `Draw the target graph as DOT, SVG or PNG (chosen by the output extension).
With --pattern the configured algorithm searches for an embedding first; image
vertices are filled green and edges carrying pattern edges are drawn bold.`,
		Example: `  subiso render target.yaml -o target.svg
  subiso render target.yaml --pattern pattern.yaml -o match.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target, err := graphio.Load(args[0])
			if err != nil {
				return err
			}

			var (
				pattern *core.Graph
				m       subiso.Mapping
			)
			out := cmd.OutOrStdout()
			if opts.pattern != "" {
				if pattern, err = graphio.Load(opts.pattern); err != nil {
					return err
				}
				res, _, err := c.search(ctx, target, pattern)
				if err != nil {
					return err
				}
				if res.Found {
					m = res.Mapping
					printSuccess(out, "embedding found; highlighting %s vertices", num(len(m)))
				} else {
					printWarning(out, "%s does not embed; drawing the plain target", opts.pattern)
				}
			}

			if err := writeRender(ctx, opts.output, target, pattern, m); err != nil {
				return err
			}
			printFile(out, opts.output)
			return nil
		},
	}

	addSearchFlags(cmd)
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "pattern file to search for and highlight")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "graph.svg", "output file (.dot, .svg, .png)")

	return cmd
}
