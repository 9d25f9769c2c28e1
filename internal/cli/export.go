package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/recipebox/internal/filter"
	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

const (
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatMarkdown = "markdown"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var format, output string
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write recipes as JSON, YAML or markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format == "md" {
				format = formatMarkdown
			}
			if format != formatJSON && format != formatYAML && format != formatMarkdown {
				return fmt.Errorf("unknown format %q (want json, yaml or markdown)", format)
			}
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				recipes, err := s.repo.Init()
				if err != nil {
					return err
				}
				matched := filter.Recipes(recipes, criteria)
				data, err := encodeRecipes(matched, format)
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = out.Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				ui.OK(cmd.ErrOrStderr(), fmt.Sprintf("Exported %d recipes to %s", len(matched), output))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "Output format: json, yaml or markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only recipes whose title or description contains this text")
	cmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", filter.All, "Only recipes of this difficulty")
	cmd.Flags().IntVarP(&opts.maxTime, "max-time", "m", 0, "Only recipes with a total time up to this many minutes")
	return cmd
}

func encodeRecipes(recipes []model.Recipe, format string) ([]byte, error) {
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	switch format {
	case formatMarkdown:
		return []byte(view.MarkdownAll(recipes)), nil
	case formatYAML:
		data, err := yaml.Marshal(recipes)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(recipes, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}
