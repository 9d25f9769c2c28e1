package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/recipebox/internal/recipe"
)

var (
	symCheck = "✔"
	symCross = "✖"
	symInfo  = "ℹ"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// ColorEnabled reports whether styled output should go to f.
func ColorEnabled(f *os.File) bool {
	if disableColor {
		return false
	}
	if forceColor {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// C renders s in style when stdout takes color.
func C(style lipgloss.Style, s string) string {
	if !ColorEnabled(os.Stdout) {
		return s
	}
	return style.Render(s)
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(current.Success, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Error, symCross+" "+msg)) }
func Info(w io.Writer, msg string) { fmt.Fprintln(w, C(current.Info, symInfo+" "+msg)) }

// NoticeLine renders a notice as a single status line.
func NoticeLine(n recipe.Notice) string {
	switch n.Severity {
	case recipe.Success:
		return current.Success.Render(symCheck + " " + n.Message)
	case recipe.Error:
		return current.Error.Render(symCross + " " + n.Message)
	default:
		return current.Info.Render(symInfo + " " + n.Message)
	}
}

// Notifier prints repository notices: errors to errw, the rest to w.
func Notifier(w, errw io.Writer) recipe.Notifier {
	return recipe.NotifierFunc(func(n recipe.Notice) {
		switch n.Severity {
		case recipe.Error:
			Fail(errw, n.Message)
		case recipe.Success:
			OK(w, n.Message)
		default:
			Info(w, n.Message)
		}
	})
}
