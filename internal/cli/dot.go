package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linkrank/linkrank/pkg/pipeline"
	"github.com/linkrank/linkrank/pkg/rank"
	"github.com/linkrank/linkrank/pkg/render"
)

// dotCommand creates the dot command for Graphviz output.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output   string
		svg      bool
		ranked   bool
		detailed bool
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "dot [corpus-dir|graph.json]",
		Short: "Render a link graph as a Graphviz diagram",
		Long: `Render a link graph as a Graphviz diagram.

By default the DOT source is written, ready for external Graphviz tools.
With --svg the diagram is rendered in-process. With --ranked the
iterative estimator runs first and node sizes reflect each page's rank.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), args[0], dotOptions{
				output:   output,
				svg:      svg,
				ranked:   ranked,
				detailed: detailed,
				noCache:  noCache,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default graph.dot or graph.svg)")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT source")
	cmd.Flags().BoolVar(&ranked, "ranked", false, "scale nodes by iterated rank")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include rank values in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

type dotOptions struct {
	output   string
	svg      bool
	ranked   bool
	detailed bool
	noCache  bool
}

func (c *CLI) runDot(ctx context.Context, input string, opts dotOptions) error {
	g, dir, err := resolveInput(input)
	if err != nil {
		return err
	}

	var ranks rank.Distribution
	if opts.ranked || opts.detailed {
		runner, err := c.newRunner(opts.noCache)
		if err != nil {
			return fmt.Errorf("initialize runner: %w", err)
		}
		defer runner.Cache.Close()

		result, err := runner.Execute(ctx, pipeline.Options{
			Dir:   dir,
			Graph: g,
			Rank:  c.Config.rankOptions(),
		})
		if err != nil {
			return err
		}
		g = result.Graph
		ranks = result.Iterated
	} else if g == nil {
		runner, err := c.newRunner(opts.noCache)
		if err != nil {
			return fmt.Errorf("initialize runner: %w", err)
		}
		defer runner.Cache.Close()

		g, _, err = runner.Crawl(ctx, dir, pipeline.Options{Dir: dir})
		if err != nil {
			return err
		}
	}

	dot := render.ToDOT(g, render.Options{Ranks: ranks, Detailed: opts.detailed})

	output := opts.output
	if !opts.svg {
		if output == "" {
			output = "graph.dot"
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
	} else {
		if output == "" {
			output = "graph.svg"
		} else if !strings.HasSuffix(output, ".svg") {
			output += ".svg"
		}

		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		svg, err := render.RenderSVG(dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render SVG: %w", err)
		}
		spinner.Stop()

		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
	}

	printSuccess("Rendered link graph")
	printStats(g.Len(), g.EdgeCount(), false)
	printFile(output)
	return nil
}
