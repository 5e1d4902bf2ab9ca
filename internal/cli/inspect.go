package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/foldline/foldline/pkg/geom"
	"github.com/foldline/foldline/pkg/pattern"
	"github.com/foldline/foldline/pkg/pipeline"
	"github.com/foldline/foldline/pkg/unfold"
)

// inspectCommand creates the inspect command, a dry run that shows the
// panel inventory without writing any files.
func (c *CLI) inspectCommand() *cobra.Command {
	var steps bool

	cmd := &cobra.Command{
		Use:   "inspect [building.toml]",
		Short: "Show the panel inventory for a building",
		Long: `Show the panel inventory for a building.

The inspect command unfolds the building and prints a summary of the
resulting pattern: panels per group, edge counts per treatment, the
sheet size, and optionally the assembly steps. Nothing is written to
disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args)
			if err != nil {
				return err
			}
			if input == "" {
				return nil
			}
			return c.runInspect(cmd.Context(), input, steps)
		},
	}

	cmd.Flags().BoolVar(&steps, "steps", false, "also print the assembly steps")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, steps bool) error {
	params, err := pipeline.Load(pipeline.Options{BuildingFile: input})
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	pat, err := unfold.Unfold(params, unfold.WithLogger(c.Logger))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Unfolded %d panels", pat.PanelCount()))

	printNewline()
	printKeyValue("Building", pat.BuildingName)
	printKeyValue("Scale", pat.ScaleLabel)
	printKeyValue("Material", string(pat.MaterialType))
	printKeyValue("Strategy", string(unfold.StrategyFor(params.Material)))
	printKeyValue("Sheet", fmt.Sprintf("%.2f x %.2f in", pat.Width, pat.Height))
	printKeyValue("Coverage", fmt.Sprintf("%.0f%%", sheetCoverage(pat)*100))
	printKeyValue("Glue tabs", fmt.Sprintf("%d", len(pat.GlueTabs)))
	printNewline()

	fmt.Println(renderGroupTable(pat))
	printNewline()

	if steps {
		fmt.Println(StyleTitle.Render("Assembly"))
		for i, step := range pat.AssemblySteps {
			printDetail("%2d. %s", i+1, step)
		}
		printNewline()
	}

	return nil
}

// sheetCoverage returns the fraction of the sheet area occupied by
// panel polygons.
func sheetCoverage(pat *pattern.UnfoldedPattern) float64 {
	sheet := pat.Width * pat.Height
	if sheet <= 0 {
		return 0
	}
	var used float64
	for _, p := range pat.AllPanels() {
		used += math.Abs(geom.Area(p.Vertices))
	}
	return used / sheet
}

// renderGroupTable builds the per-group panel summary table.
func renderGroupTable(pat *pattern.UnfoldedPattern) string {
	groups := []struct {
		name   string
		panels []pattern.Panel
	}{
		{"structural", pat.Panels},
		{"facade", pat.FacadePanels},
		{"accessory", pat.AccessoryPanels},
		{"detail", pat.DetailPanels},
	}

	rows := [][]string{}
	var totalPanels int
	totalEdges := map[pattern.EdgeType]int{}

	for _, g := range groups {
		if len(g.panels) == 0 {
			continue
		}
		edges := map[pattern.EdgeType]int{}
		for _, p := range g.panels {
			for _, e := range p.Edges {
				edges[e.Type]++
				totalEdges[e.Type]++
			}
		}
		totalPanels += len(g.panels)
		rows = append(rows, []string{
			g.name,
			fmt.Sprintf("%d", len(g.panels)),
			fmt.Sprintf("%d", edges[pattern.EdgeCut]),
			fmt.Sprintf("%d", edges[pattern.EdgeFoldMountain]+edges[pattern.EdgeFoldValley]),
			fmt.Sprintf("%d", edges[pattern.EdgeScore]),
			fmt.Sprintf("%d", edges[pattern.EdgeGlueTab]),
		})
	}

	rows = append(rows, []string{
		"total",
		fmt.Sprintf("%d", totalPanels),
		fmt.Sprintf("%d", totalEdges[pattern.EdgeCut]),
		fmt.Sprintf("%d", totalEdges[pattern.EdgeFoldMountain]+totalEdges[pattern.EdgeFoldValley]),
		fmt.Sprintf("%d", totalEdges[pattern.EdgeScore]),
		fmt.Sprintf("%d", totalEdges[pattern.EdgeGlueTab]),
	})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	lastRow := len(rows) - 1

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Group", "Panels", "Cut", "Fold", "Score", "Tabbed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == lastRow {
				return lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
