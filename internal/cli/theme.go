package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/ui"
)

func newThemeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|mono|toggle]",
		Short:     "Show or change the saved color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: append(append([]string{}, ui.Themes...), "toggle"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(cmd, func(s *session, out io.Writer) error {
				current, err := ui.StoredTheme(s.store)
				if err != nil {
					return err
				}
				if len(args) == 0 {
					fmt.Fprintln(out, current)
					return nil
				}
				next := strings.ToLower(strings.TrimSpace(args[0]))
				if next == "toggle" {
					next = ui.Toggle(current)
				}
				if err := ui.StoreTheme(s.store, next); err != nil {
					return err
				}
				ui.OK(out, "Theme set to "+next)
				return nil
			})
		},
	}
}
