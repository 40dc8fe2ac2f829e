package main

import (
	"github.com/mutagen-io/lsfields/pkg/filesystem"
	"github.com/mutagen-io/lsfields/pkg/render"
)

// octal renders a placeholder, since Windows entries have attributes rather
// than permission bits.
func octal(_ *filesystem.Entry, theme *render.Theme) render.TextCell {
	return render.Paint(theme.Punctuation, "-")
}
