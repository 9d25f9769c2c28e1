package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

type listOptions struct {
	search     string
	difficulty string
	maxTime    int
	group      bool
	table      bool
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				recipes, err := s.repo.Init()
				if err != nil {
					return err
				}
				lv := view.NewList(recipes, criteria)
				if opts.table {
					fmt.Fprintln(out, cardTable(lv.Cards))
					return nil
				}
				fmt.Fprintln(out, renderList(lv, opts.group))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only recipes whose title or description contains this text")
	cmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", filter.All, "Only recipes of this difficulty (all, easy, medium, hard)")
	cmd.Flags().IntVarP(&opts.maxTime, "max-time", "m", 0, "Only recipes with a total time up to this many minutes (0 = any)")
	cmd.Flags().BoolVarP(&opts.group, "group", "g", false, "Group output by difficulty")
	cmd.Flags().BoolVarP(&opts.table, "table", "t", false, "Render a table instead of cards")
	return cmd
}

func (o listOptions) criteria() (filter.Criteria, error) {
	d := strings.ToLower(strings.TrimSpace(o.difficulty))
	if d != filter.All && d != "" && !model.Difficulty(d).Valid() {
		return filter.Criteria{}, fmt.Errorf("unknown difficulty %q (want all, easy, medium or hard)", o.difficulty)
	}
	if o.maxTime < 0 {
		return filter.Criteria{}, fmt.Errorf("max-time must not be negative, got %d", o.maxTime)
	}
	return filter.Criteria{Search: o.search, Difficulty: d, MaxTotalMinutes: o.maxTime}.Normalize(), nil
}

// renderList draws the framed card listing with a count header.
func renderList(lv view.List, group bool) string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Recipes"), ui.C(t.Accent, "Shown"), lv.Shown)
	if lv.Shown != lv.Total {
		header += fmt.Sprintf("  %s %d", ui.C(t.Muted, "of"), lv.Total)
	}

	var lines []string
	lines = append(lines, header, "")
	if group {
		lines = append(lines, groupLines(lv.Cards)...)
	} else {
		lines = append(lines, flatLines(lv.Cards)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: open one with `recipebox show <id>`"))
	return ui.Panel(lines)
}

func flatLines(cards []view.Card) []string {
	if len(cards) == 0 {
		return []string{ui.EmptyState()}
	}
	t := ui.Current()
	out := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		c.Title = ui.Truncate(c.Title, 60)
		title, meta := ui.CardLines(c, false)
		idx := ui.C(t.Muted, fmt.Sprintf("%2d.", i+1))
		out = append(out,
			fmt.Sprintf("%s %s  %s", idx, strings.TrimPrefix(title, "  "), ui.C(t.Muted, c.ID)),
			"  "+meta,
		)
	}
	return out
}

func groupLines(cards []view.Card) []string {
	var lines []string
	for i, d := range model.Difficulties {
		var group []view.Card
		for _, c := range cards {
			if c.Difficulty == d {
				group = append(group, c)
			}
		}
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.Badge(d))
		if len(group) == 0 {
			lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
			continue
		}
		lines = append(lines, flatLines(group)...)
	}
	return lines
}

func cardRows(cards []view.Card) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{c.ID, ui.Truncate(c.Title, 40), c.Label, c.Duration, c.RatingText})
	}
	return rows
}
