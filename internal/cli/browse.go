package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/tui"
)

func newBrowseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive recipe browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(ctx)
		},
	}
}

// runBrowse starts the TUI. If the session cannot be opened the browser
// still starts, showing only the error.
func runBrowse(ctx *commandContext) error {
	notices := &recipe.Notices{}
	sess, err := ctx.openSession(notices)
	if err != nil {
		if _, runErr := tea.NewProgram(tui.Fatal(err), tea.WithAltScreen()).Run(); runErr != nil {
			return runErr
		}
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	defer sess.Close()

	sess.log.Info("browser starting", zap.String("backend", sess.cfg.Storage.Backend))
	return tui.Run(tui.Options{
		Repo:    sess.repo,
		Notices: notices,
		Prefs:   sess.store,
		Theme:   sess.cfg.UI.Theme,
		Mouse:   sess.cfg.UI.Mouse,
		Log:     sess.log,
	})
}
