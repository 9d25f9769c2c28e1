// Package cli is the recipebox command tree. With no subcommand it opens
// the interactive browser.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/ui"
)

// NewRootCommand builds the recipebox command tree.
func NewRootCommand() *cobra.Command {
	var configFlag string
	var noColor bool
	var ephemeral bool

	ctx := newCommandContext(&configFlag, &ephemeral)

	rootCmd := &cobra.Command{
		Use:           "recipebox",
		Short:         "Keep, search and rate your recipes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor || !ui.ColorEnabled(os.Stdout) {
				ui.SetColorForcing(false, true)
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if ui.ValidTheme(cfg.UI.Theme) {
				ui.SetTheme(cfg.UI.Theme)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep recipes in memory for this run only")

	rootCmd.AddCommand(newBrowseCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newRateCommand(ctx))
	rootCmd.AddCommand(newRepairCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newThemeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
