package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mkarlsen/crimedash/internal/dataset"
	"github.com/mkarlsen/crimedash/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <view>",
	Short: "Print the ranked tables for a view to the terminal",
	Long: "Inspect loads the CSV files and prints the same ranked tables the\n" +
		"dashboard renders, without starting the HTTP server.\n\n" +
		"Available views: " + strings.Join(viewKeys(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	view, ok := dataset.ViewByKey(args[0])
	if !ok {
		return fmt.Errorf("unknown view %q (available: %s)", args[0], strings.Join(viewKeys(), ", "))
	}

	store, err := buildStore(cmd.Context())
	if err != nil {
		return err
	}

	snap, err := store.Snapshot()
	if err != nil {
		return err
	}

	color.Cyan("=== %s ===", view.Label)
	if view.Blurb != "" {
		fmt.Println(view.Blurb)
	}

	for _, barKey := range view.Bars {
		table, _ := snap.Table(barKey)
		dt := render.Rank(table, render.TopN)

		color.Yellow("\n%s (top %d of %d)", table.Label, len(dt.Rows), dt.SourceRows)
		printRanked(dt)
	}

	if view.Pie != "" {
		table, _ := snap.Table(view.Pie)

		color.Yellow("\n%s", table.Label)
		if err := printProportions(table); err != nil {
			color.Red("  %v", err)
		}
	}

	return nil
}

// printRanked prints a ranked display table, marking the leading category.
func printRanked(dt render.DisplayTable) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Category", "Count"})
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, row := range dt.Rows {
		count := humanize.Comma(row.Value)
		if row.Value == dt.MaxValue {
			count += " *"
		}
		tw.Append([]string{row.Key, count})
	}
	tw.Render()
}

// printProportions prints the full proportion table with percentages.
func printProportions(t dataset.Table) error {
	slices, err := render.Proportions(t)
	if err != nil {
		return err
	}

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Category", "Count", "Share"})
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, s := range slices {
		tw.Append([]string{
			s.Key,
			humanize.Comma(s.Value),
			fmt.Sprintf("%.1f%%", s.Percent),
		})
	}
	tw.Render()
	return nil
}

// viewKeys returns the sidebar view keys in display order.
func viewKeys() []string {
	views := dataset.Views()
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = v.Key
	}
	return keys
}
