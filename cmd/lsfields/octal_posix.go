//go:build !windows

package main

import (
	"github.com/mutagen-io/lsfields/pkg/fields"
	"github.com/mutagen-io/lsfields/pkg/filesystem"
	"github.com/mutagen-io/lsfields/pkg/render"
)

// octal renders an entry's permission bits in octal.
func octal(entry *filesystem.Entry, theme *render.Theme) render.TextCell {
	return render.Octal(fields.OctalPermissions{Permissions: entry.Permissions.Permissions}, theme)
}
