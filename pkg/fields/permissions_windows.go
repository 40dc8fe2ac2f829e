package fields

import (
	"golang.org/x/sys/windows"
)

// Attributes is an entry's Windows file attribute set, restricted to the flags
// shown in a listing.
type Attributes struct {
	Archive      bool
	Directory    bool
	Readonly     bool
	Hidden       bool
	System       bool
	ReparsePoint bool
}

// AttributesFromRaw extracts the displayed flags from a raw FILE_ATTRIBUTE_*
// bitmask.
func AttributesFromRaw(raw uint32) Attributes {
	return Attributes{
		Archive:      raw&windows.FILE_ATTRIBUTE_ARCHIVE != 0,
		Directory:    raw&windows.FILE_ATTRIBUTE_DIRECTORY != 0,
		Readonly:     raw&windows.FILE_ATTRIBUTE_READONLY != 0,
		Hidden:       raw&windows.FILE_ATTRIBUTE_HIDDEN != 0,
		System:       raw&windows.FILE_ATTRIBUTE_SYSTEM != 0,
		ReparsePoint: raw&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0,
	}
}

// PermissionsPlus fuses an entry's type, attribute flags, and extended
// attribute presence into the single unit displayed in the first column of a
// long listing.
type PermissionsPlus struct {
	// FileType is the entry type.
	FileType Type
	// Attributes is the entry's attribute set.
	Attributes Attributes
	// Xattrs indicates that the entry has extended attributes.
	Xattrs bool
}
