package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/config"
	"github.com/idilsaglam/recipebox/internal/ui"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the recipebox configuration",
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigShowCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a sample recipebox.toml",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultPath, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("determine default config path: %w", err)
			}
			target := defaultPath
			if p := strings.TrimSpace(targetPath); p != "" {
				if target, err = config.ExpandPath(p); err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
			}

			if err := writeSampleConfig(target, overwrite); err != nil {
				return err
			}
			printConfigHint(cmd.OutOrStdout(), target, target == defaultPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Where to write the file (default ~/.config/recipebox/config.toml)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

// writeSampleConfig creates target from the embedded sample. An existing
// file is only replaced when overwrite is set.
func writeSampleConfig(target string, overwrite bool) error {
	if !overwrite {
		_, err := os.Stat(target)
		switch {
		case err == nil:
			return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("check config path: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := config.CreateSample(target); err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	return nil
}

func printConfigHint(out io.Writer, target string, isDefault bool) {
	ui.OK(out, "Wrote sample configuration to "+target)
	if isDefault {
		fmt.Fprintln(out, "recipebox reads this file automatically.")
		return
	}
	fmt.Fprintf(out, "Use it with: recipebox --config %s\n", target)
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration recipebox is using",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ctx.configFound {
				fmt.Fprintf(out, "# loaded from %s\n", ctx.configPath)
			} else {
				fmt.Fprintf(out, "# defaults; no file at %s\n", ctx.configPath)
			}
			_, err = out.Write(data)
			return err
		},
	}
}
