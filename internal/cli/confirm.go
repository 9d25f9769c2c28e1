package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/view"
)

// confirm asks on the command's input whether title should be deleted.
// Anything but y or yes declines; EOF declines too.
func confirm(cmd *cobra.Command, title string) (bool, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.C(ui.Current().Title, title))
	fmt.Fprint(out, view.ConfirmDelete+" [y/N]: ")

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	fmt.Fprintln(out)
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
