package cmd

import (
	"os"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"

	"github.com/mutagen-io/lsfields/pkg/configuration"
)

// isTerminal returns whether or not the file is a terminal, including Cygwin
// and MSYS2 pseudo-terminals.
func isTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConfigureColor enables or disables styled output according to the color
// mode. In automatic mode, output is styled only if standard output is a
// terminal and the NO_COLOR environment variable isn't set.
func ConfigureColor(mode configuration.ColorMode) {
	switch mode {
	case configuration.ColorModeAlways:
		color.NoColor = false
	case configuration.ColorModeNever:
		color.NoColor = true
	default:
		_, noColor := os.LookupEnv("NO_COLOR")
		color.NoColor = noColor || !isTerminal(os.Stdout)
	}
}
