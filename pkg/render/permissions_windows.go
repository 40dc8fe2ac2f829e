package render

import (
	"github.com/mutagen-io/lsfields/pkg/fields"
)

// PermissionsPlus renders an entry's type character followed by its attribute
// flags: archive, directory, readonly, hidden, system, and reparse point.
func PermissionsPlus(permissions fields.PermissionsPlus, theme *Theme) TextCell {
	cell := Type(permissions.FileType, theme)
	a := permissions.Attributes
	flags := []struct {
		set       bool
		character string
	}{
		{a.Archive, "a"},
		{a.Directory, "d"},
		{a.Readonly, "r"},
		{a.Hidden, "h"},
		{a.System, "s"},
		{a.ReparsePoint, "l"},
	}
	for _, f := range flags {
		if f.set {
			cell.Append(theme.Attribute, f.character)
		} else {
			cell.Append(theme.Punctuation, "-")
		}
	}
	if permissions.Xattrs {
		cell.Append(theme.Xattr, "@")
	}
	return cell
}
