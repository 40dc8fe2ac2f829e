package filesystem

import (
	"os"
	"syscall"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// hasPlatformMetadata returns whether or not info carries Windows attribute
// data.
func hasPlatformMetadata(info os.FileInfo) bool {
	_, ok := info.Sys().(*syscall.Win32FileAttributeData)
	return ok
}

// populate fills in the entry's fields from Windows attribute data. Windows
// doesn't expose link counts or inode numbers through this metadata, so those
// are reported as 1 and 0, respectively. Ownership is resolved lazily from the
// entry's path.
func (e *Entry) populate(info os.FileInfo) {
	// Classify the entry.
	e.Type = Mode(info.Mode()).Type()

	// Compute attributes.
	var attributes uint32
	if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		attributes = data.FileAttributes
	}
	e.Permissions = fields.PermissionsPlus{
		FileType:   e.Type,
		Attributes: fields.AttributesFromRaw(attributes),
	}

	// Compute counts and size. Block usage isn't reported.
	e.Links = fields.NewLinks(e.Type, 1)
	e.Blocks = fields.BlocksNone()
	e.Size = sizeFor(e.Type, uint64(info.Size()), fields.DeviceIDs{})

	// Record ownership.
	e.User = fields.User{Path: e.Path}
	e.Group = fields.Group{Path: e.Path}
}
