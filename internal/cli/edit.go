package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/validate"
)

// recipeFlags are the field flags shared by add and edit.
type recipeFlags struct {
	file        string
	title       string
	description string
	ingredients []string
	steps       []string
	prep        int
	cook        int
	difficulty  string
	image       string
}

func (f *recipeFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Read the recipe from a YAML or JSON file (- for stdin)")
	fl.StringVar(&f.title, "title", "", "Recipe title")
	fl.StringVar(&f.description, "description", "", "Short description")
	fl.StringArrayVarP(&f.ingredients, "ingredient", "i", nil, "Ingredient line (repeatable)")
	fl.StringArrayVar(&f.steps, "step", nil, "Instruction step (repeatable)")
	fl.IntVar(&f.prep, "prep", 0, "Preparation time in minutes")
	fl.IntVar(&f.cook, "cook", 0, "Cooking time in minutes")
	fl.StringVar(&f.difficulty, "difficulty", string(model.Easy), "easy, medium or hard")
	fl.StringVar(&f.image, "image", "", "Image URL (http or https)")
}

// apply copies every flag the user set onto form.
func (f *recipeFlags) apply(cmd *cobra.Command, form *validate.Form) {
	changed := cmd.Flags().Changed
	if changed("title") {
		form.Title = f.title
	}
	if changed("description") {
		form.Description = f.description
	}
	if changed("ingredient") {
		form.Ingredients = strings.Join(f.ingredients, "\n")
	}
	if changed("step") {
		form.Steps = strings.Join(f.steps, "\n")
	}
	if changed("prep") {
		form.PrepHours, form.PrepMinutes = "", strconv.Itoa(f.prep)
	}
	if changed("cook") {
		form.CookHours, form.CookMinutes = "", strconv.Itoa(f.cook)
	}
	if changed("difficulty") {
		form.Difficulty = f.difficulty
	}
	if changed("image") {
		form.ImageURL = f.image
	}
}

// formFor fills a form from r without normalizing its difficulty, so an
// illegal level in an imported file is reported instead of replaced.
func formFor(r model.Recipe) validate.Form {
	form := validate.FormFromRecipe(r)
	form.Difficulty = string(r.Difficulty)
	return form
}

func readRecipeFile(cmd *cobra.Command, path string) (model.Recipe, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.Recipe{}, fmt.Errorf("read recipe file: %w", err)
	}
	var r model.Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return model.Recipe{}, fmt.Errorf("parse recipe file %s: %w", path, err)
	}
	return r, nil
}

// submit validates form and stores the draft, printing field errors the
// way the form shows them inline.
func submit(s *session, cmd *cobra.Command, form validate.Form) (model.Recipe, error) {
	draft, errs := validate.Check(form)
	if len(errs) > 0 {
		errw := cmd.ErrOrStderr()
		for _, fe := range errs {
			ui.Fail(errw, fe.Error())
		}
		return model.Recipe{}, fmt.Errorf("%w: %w", ErrReported, errs)
	}
	saved, _, err := s.repo.Upsert(draft)
	return saved, err
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var flags recipeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe from flags or a file",
		Args:  cobra.NoArgs,
		Example: `  recipebox add --title "Masala Chai" --description "Spiced milk tea for cold mornings" \
      -i "2 cups milk" -i "1 tbsp tea leaves" --step "Simmer" --step "Strain" --prep 5 --cook 10
  recipebox add -f chai.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				if _, err := s.repo.Init(); err != nil {
					return err
				}
				form := validate.NewForm()
				if flags.file != "" {
					r, err := readRecipeFile(cmd, flags.file)
					if err != nil {
						return err
					}
					r.ID = ""
					form = formFor(r)
				}
				flags.apply(cmd, &form)
				saved, err := submit(s, cmd, form)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, saved.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var flags recipeFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a recipe; its rating is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				if _, err := s.repo.Init(); err != nil {
					return err
				}
				existing, err := s.repo.Get(strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				form := formFor(existing)
				if flags.file != "" {
					r, err := readRecipeFile(cmd, flags.file)
					if err != nil {
						return err
					}
					form = formFor(r)
				}
				form.ID = existing.ID
				flags.apply(cmd, &form)
				_, err = submit(s, cmd, form)
				return err
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				if _, err := s.repo.Init(); err != nil {
					return err
				}
				id := strings.TrimSpace(args[0])
				if !yes {
					r, err := s.repo.Get(id)
					if err != nil {
						return err
					}
					ok, err := confirm(cmd, r.Title)
					if err != nil {
						return err
					}
					if !ok {
						ui.Info(out, "Kept "+strconv.Quote(r.Title))
						return nil
					}
				}
				_, err := s.repo.Delete(id)
				return err
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <stars>",
		Short: "Rate a recipe from 0 to 5 in half stars",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[1])
			}
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				if _, err := s.repo.Init(); err != nil {
					return err
				}
				id := strings.TrimSpace(args[0])
				if _, err := s.repo.Get(id); err != nil {
					return err
				}
				if err := s.repo.SetRating(id, value); err != nil {
					return err
				}
				r, err := s.repo.Get(id)
				if err != nil {
					return err
				}
				ui.OK(out, fmt.Sprintf("Rated %q %.1f/5", r.Title, r.Rating))
				return nil
			})
		},
	}
}

func newRepairCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Drop malformed stored recipes and reset unreadable data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				recipes, err := s.repo.RepairAndLoad()
				if err != nil {
					return err
				}
				ui.Info(out, fmt.Sprintf("%d recipes stored", len(recipes)))
				return nil
			})
		},
	}
}
