package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/pipeline"
	"github.com/linkrank/linkrank/pkg/rank"
)

// rankCommand creates the rank command.
func (c *CLI) rankCommand() *cobra.Command {
	var (
		damping   float64
		samples   int
		threshold float64
		seed      int64
		topN      int
		asJSON    bool
		refresh   bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "rank [corpus-dir|graph.json]",
		Short: "Estimate PageRank for every page in a corpus",
		Long: `Estimate PageRank for every page in a corpus.

The argument is either a directory of HTML pages to crawl or a graph.json
file produced by 'crawl'. Both estimators run: a random-surfer sampling
walk and an iteration to a fixed point. Iterated results are cached
locally; pass --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.rankOptions()
			if cmd.Flags().Changed("damping") {
				opts.Damping = damping
			}
			if cmd.Flags().Changed("samples") {
				opts.Samples = samples
			}
			if cmd.Flags().Changed("threshold") {
				opts.Threshold = threshold
			}
			if cmd.Flags().Changed("seed") {
				opts.Rand = rand.New(rand.NewSource(seed))
			}
			return c.runRank(cmd.Context(), args[0], opts, rankOutput{
				topN:    topN,
				asJSON:  asJSON,
				refresh: refresh,
				noCache: noCache,
			})
		},
	}

	cmd.Flags().Float64VarP(&damping, "damping", "d", rank.DefaultDamping, "damping factor, must be in (0, 1)")
	cmd.Flags().IntVarP(&samples, "samples", "n", rank.DefaultSamples, "number of random walk steps")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", rank.DefaultThreshold, "convergence threshold for iteration")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the sampling estimator (default: time-based)")
	cmd.Flags().IntVar(&topN, "top", 0, "show only the N highest-ranked pages (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached result exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

type rankOutput struct {
	topN    int
	asJSON  bool
	refresh bool
	noCache bool
}

func (c *CLI) runRank(ctx context.Context, input string, opts rank.Options, out rankOutput) error {
	pipeOpts := pipeline.Options{Rank: opts, Refresh: out.refresh}
	if g, dir, err := resolveInput(input); err != nil {
		return err
	} else if g != nil {
		pipeOpts.Graph = g
	} else {
		pipeOpts.Dir = dir
	}

	runner, err := c.newRunner(out.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, "Ranking pages...")
	if !out.asJSON {
		spinner.Start()
	}

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		if !out.asJSON {
			spinner.StopWithError("Ranking failed")
		}
		return err
	}
	if !out.asJSON {
		spinner.Stop()
	}

	if out.asJSON {
		return printRankJSON(result)
	}

	printSuccess("Ranked %d pages", result.Stats.NodeCount)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RankHit)
	printNewline()
	if out.topN > 0 {
		printTopTable(result, out.topN)
	} else {
		printEstimates(result, opts.Samples)
	}
	return nil
}

// resolveInput classifies the argument: a directory becomes a crawl
// target, a file is read as graph JSON.
func resolveInput(input string) (*graph.Graph, string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", input, err)
	}
	if info.IsDir() {
		return nil, input, nil
	}
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return nil, "", fmt.Errorf("load graph %s: %w", input, err)
	}
	return g, "", nil
}

// printEstimates prints each estimator's result as its own section, one
// page per line in name order with 4-decimal probabilities.
func printEstimates(result *pipeline.Result, samples int) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Sampling (n = %d)", samples)))
	for _, e := range result.Sampled.ByName() {
		fmt.Printf("  %s: %s\n", StyleValue.Render(e.Page), StyleHighlight.Render(fmt.Sprintf("%.4f", e.Rank)))
	}
	printNewline()
	fmt.Println(StyleTitle.Render("Iteration"))
	for _, e := range result.Iterated.ByName() {
		fmt.Printf("  %s: %s\n", StyleValue.Render(e.Page), StyleHighlight.Render(fmt.Sprintf("%.4f", e.Rank)))
	}
}

// printTopTable renders both estimates side by side, highest iterated
// rank first.
func printTopTable(result *pipeline.Result, topN int) {
	entries := result.Iterated.Sorted()
	if topN < len(entries) {
		entries = entries[:topN]
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			e.Page,
			fmt.Sprintf("%.4f", e.Rank),
			fmt.Sprintf("%.4f", result.Sampled[e.Page]),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Page", "Iterated", "Sampled").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleValue
			}
			return StyleHighlight
		})

	fmt.Println(t.Render())
}

// rankResult is the --json output shape.
type rankResult struct {
	GraphHash string            `json:"graph_hash"`
	Sampled   rank.Distribution `json:"sampled"`
	Iterated  rank.Distribution `json:"iterated"`
	Stats     pipeline.Stats    `json:"stats"`
}

func printRankJSON(result *pipeline.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rankResult{
		GraphHash: result.GraphHash,
		Sampled:   result.Sampled,
		Iterated:  result.Iterated,
		Stats:     result.Stats,
	})
}
