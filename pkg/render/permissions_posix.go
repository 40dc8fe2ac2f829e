//go:build !windows

package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// appendBit appends a read or write permission character to a cell.
func appendBit(cell *TextCell, set bool, character string, style, unset *color.Color) {
	if set {
		cell.Append(style, character)
	} else {
		cell.Append(unset, "-")
	}
}

// appendExecute appends an execute permission character to a cell, folding in
// the special bit (setuid, setgid, or sticky) that shares its position.
func appendExecute(cell *TextCell, execute, special bool, specialCharacter string, theme *Theme) {
	switch {
	case special && execute:
		cell.Append(theme.SpecialBit, specialCharacter)
	case special:
		cell.Append(theme.SpecialBit, strings.ToUpper(specialCharacter))
	case execute:
		cell.Append(theme.Execute, "x")
	default:
		cell.Append(theme.Punctuation, "-")
	}
}

// PermissionsPlus renders an entry's type character, its permission bits in
// rwx form, and an @ marker if it has extended attributes.
func PermissionsPlus(permissions fields.PermissionsPlus, theme *Theme) TextCell {
	cell := Type(permissions.FileType, theme)
	p := permissions.Permissions

	appendBit(&cell, p.UserRead, "r", theme.Read, theme.Punctuation)
	appendBit(&cell, p.UserWrite, "w", theme.Write, theme.Punctuation)
	appendExecute(&cell, p.UserExecute, p.SetUID, "s", theme)

	appendBit(&cell, p.GroupRead, "r", theme.Read, theme.Punctuation)
	appendBit(&cell, p.GroupWrite, "w", theme.Write, theme.Punctuation)
	appendExecute(&cell, p.GroupExecute, p.SetGID, "s", theme)

	appendBit(&cell, p.OtherRead, "r", theme.Read, theme.Punctuation)
	appendBit(&cell, p.OtherWrite, "w", theme.Write, theme.Punctuation)
	appendExecute(&cell, p.OtherExecute, p.Sticky, "t", theme)

	if permissions.Xattrs {
		cell.Append(theme.Xattr, "@")
	}

	return cell
}

// Octal renders permission bits as four octal digits.
func Octal(octal fields.OctalPermissions, theme *Theme) TextCell {
	return Paint(theme.Octal, fmt.Sprintf("%04o", octal.Value()))
}
