package main

import (
	"encoding/json"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/gcloudgt/contacto/internal/tui/theme"
	"github.com/spf13/cobra"
)

var catalogFlags struct {
	json bool
}

var catalogCmd = &cobra.Command{
	Use:       "catalog [project_types|budgets]",
	Short:     "Show the selectable project types and budget ranges",
	ValidArgs: []string{string(catalog.KindProjectType), string(catalog.KindBudget)},
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE:      runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogFlags.json, "json", false, "Print as JSON")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	kinds := []catalog.Kind{catalog.KindProjectType, catalog.KindBudget}
	if len(args) == 1 {
		kinds = []catalog.Kind{catalog.Kind(args[0])}
	}

	out := cmd.OutOrStdout()
	result := make(map[catalog.Kind][]catalog.Entry, len(kinds))
	for _, kind := range kinds {
		entries, err := catalog.List(kind)
		if err != nil {
			return err
		}
		result[kind] = entries
	}

	if catalogFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(kinds) == 1 {
			return enc.Encode(result[kinds[0]])
		}
		return enc.Encode(result)
	}

	for i, kind := range kinds {
		if i > 0 {
			lipgloss.Fprintln(out)
		}
		lipgloss.Fprintln(out, catalogTable(kind, result[kind]))
	}
	return nil
}

// catalogTable renders one catalog as a bordered table titled by its kind.
func catalogTable(kind catalog.Kind, entries []catalog.Entry) *table.Table {
	t := theme.Current()
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Primary)).
		Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	detailHeader := "DESCRIPTION"
	if kind == catalog.KindProjectType {
		detailHeader = "ICON"
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		detail := e.Description
		if e.Icon != "" {
			detail = e.Icon
		}
		rows = append(rows, []string{e.ID, e.Label, detail})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderDefault))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(string(kind), "LABEL", detailHeader).
		Rows(rows...)
}
