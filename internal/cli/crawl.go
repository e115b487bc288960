package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/pipeline"
)

// crawlCommand creates the crawl command.
func (c *CLI) crawlCommand() *cobra.Command {
	var (
		output  string
		refresh bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "crawl <corpus-dir>",
		Short: "Crawl an HTML corpus into a link graph",
		Long: `Crawl an HTML corpus into a link graph.

Every .html file in the directory becomes a page; anchor hrefs pointing
at other pages in the corpus become links. Links to pages outside the
corpus and self-references are dropped. The graph is written as JSON
for use with 'rank', 'dot', and 'top'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCrawl(cmd.Context(), args[0], output, refresh, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "graph.json", "output file for the link graph")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recrawl even if a cached graph exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runCrawl(ctx context.Context, dir, output string, refresh, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	prog := newProgress(loggerFromContext(ctx))
	g, cached, err := runner.Crawl(ctx, dir, pipeline.Options{Dir: dir, Refresh: refresh})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Crawled %d pages", g.Len()))

	if err := graph.WriteGraphFile(g, output); err != nil {
		return fmt.Errorf("write graph: %w", err)
	}

	printSuccess("Built link graph")
	printStats(g.Len(), g.EdgeCount(), cached)
	printFile(output)
	printNewline()
	printNextStep("Rank the pages", fmt.Sprintf("linkrank rank %s", output))
	return nil
}
