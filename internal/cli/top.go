package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/linkrank/linkrank/pkg/graph"
	"github.com/linkrank/linkrank/pkg/pipeline"
	"github.com/linkrank/linkrank/pkg/rank"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// topCommand creates the interactive rank browser command.
func (c *CLI) topCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "top [corpus-dir|graph.json]",
		Short: "Browse ranked pages interactively",
		Long: `Browse ranked pages interactively.

Runs both estimators and opens a scrollable list of pages ordered by
iterated rank. Selecting a page prints its outgoing links.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTop(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runTop(ctx context.Context, input string, noCache bool) error {
	pipeOpts := pipeline.Options{Rank: c.Config.rankOptions()}
	if g, dir, err := resolveInput(input); err != nil {
		return err
	} else if g != nil {
		pipeOpts.Graph = g
	} else {
		pipeOpts.Dir = dir
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, "Ranking pages...")
	spinner.Start()
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Ranking failed")
		return err
	}
	spinner.Stop()

	model := NewRankListModel(result.Graph, result.Iterated, result.Sampled)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}

	if m, ok := final.(RankListModel); ok && m.Selected != "" {
		printPageDetail(result.Graph, m.Selected, result.Iterated)
	}
	return nil
}

// printPageDetail prints a page's rank and outgoing links.
func printPageDetail(g *graph.Graph, page string, ranks rank.Distribution) {
	fmt.Println(StyleTitle.Render(page))
	printDetail("rank %.4f", ranks[page])

	i, err := g.Index(page)
	if err != nil {
		return
	}
	targets := g.Links(i)
	if len(targets) == 0 {
		printDetail("no outgoing links")
		return
	}
	for _, j := range targets {
		printFile(g.Page(j))
	}
}

// =============================================================================
// RankListModel - Interactive page browser
// =============================================================================

// RankListModel is the bubbletea model for browsing ranked pages.
type RankListModel struct {
	Entries  []rank.Entry
	Sampled  rank.Distribution
	Graph    *graph.Graph
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewRankListModel creates a browser over the iterated ranking.
func NewRankListModel(g *graph.Graph, iterated, sampled rank.Distribution) RankListModel {
	return RankListModel{
		Entries: iterated.Sorted(),
		Sampled: sampled,
		Graph:   g,
		Height:  15,
	}
}

func (m RankListModel) Init() tea.Cmd {
	return nil
}

func (m RankListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Entries[m.Cursor].Page
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RankListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ranked Pages"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show links  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		links := "—"
		if idx, err := m.Graph.Index(e.Page); err == nil {
			if out := m.Graph.OutDegree(idx); out > 0 {
				links = fmt.Sprintf("%d", out)
			}
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i+1),
			e.Page,
			fmt.Sprintf("%.4f", e.Rank),
			fmt.Sprintf("%.4f", m.Sampled[e.Page]),
			links,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Page", "Iterated", "Sampled", "Links").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 {
				return StyleValue
			}
			return StyleDim
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
