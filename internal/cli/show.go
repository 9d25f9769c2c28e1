package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				if _, err := s.repo.Init(); err != nil {
					return err
				}
				r, err := s.repo.Get(strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				if !markdown {
					fmt.Fprintln(out, renderDetail(r))
					return nil
				}
				rendered, err := renderMarkdown(view.Markdown(r))
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the recipe as formatted markdown")
	return cmd
}

// renderMarkdown formats md for the terminal, without styling when color
// is off.
func renderMarkdown(md string) (string, error) {
	style := glamour.WithAutoStyle()
	if !ui.ColorEnabled(os.Stdout) {
		style = glamour.WithStandardStyle("notty")
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func renderDetail(r model.Recipe) string {
	t := ui.Current()
	d := view.StaticDetail(r)

	lines := []string{
		ui.C(t.Title, d.Title) + "  " + ui.C(t.Muted, d.ID),
		strings.Join([]string{
			ui.Badge(d.Difficulty),
			ui.C(t.Label, "Prep ") + d.Prep,
			ui.C(t.Label, "Cook ") + d.Cook,
			ui.C(t.Label, "Total ") + d.Total,
		}, ui.C(t.Muted, "  ·  ")),
		ui.Stars(d.Rating.Stars) + ui.C(t.Muted, d.Rating.Text),
		"",
	}
	if d.Description != "" {
		lines = append(lines, d.Description, "")
	}
	if d.ImageURL != "" {
		lines = append(lines, ui.C(t.Muted, d.ImageURL), "")
	}

	lines = append(lines, ui.C(t.Accent, "Ingredients"))
	if len(d.Ingredients) == 0 {
		lines = append(lines, ui.C(t.Muted, view.NoIngredients))
	}
	for _, ing := range d.Ingredients {
		lines = append(lines, "  • "+ing)
	}
	lines = append(lines, "", ui.C(t.Accent, "Steps"))
	if len(d.Steps) == 0 {
		lines = append(lines, ui.C(t.Muted, view.NoSteps))
	}
	for i, step := range d.Steps {
		lines = append(lines, fmt.Sprintf("  %2d. %s", i+1, step))
	}
	return ui.Panel(lines)
}
