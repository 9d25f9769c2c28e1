package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/idilsaglam/recipebox/internal/view"
)

type column struct {
	title string
	align text.Align
}

// recipeColumns are the `ls --table` columns, matching cardRows.
var recipeColumns = []column{
	{title: "ID", align: text.AlignLeft},
	{title: "Title", align: text.AlignLeft},
	{title: "Difficulty", align: text.AlignLeft},
	{title: "Time", align: text.AlignRight},
	{title: "Rating", align: text.AlignRight},
}

// cardTable renders cards as a rounded table. Headers keep their case.
func cardTable(cards []view.Card) string {
	return renderTable(recipeColumns, cardRows(cards))
}

func renderTable(columns []column, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: c.align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
