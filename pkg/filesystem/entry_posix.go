//go:build !windows

package filesystem

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// hasPlatformMetadata returns whether or not info carries a Stat_t structure.
func hasPlatformMetadata(info os.FileInfo) bool {
	_, ok := info.Sys().(*syscall.Stat_t)
	return ok
}

// populate fills in the entry's fields from a Stat_t structure. If the
// metadata doesn't carry one, only the fields derivable from os.FileMode are
// set.
func (e *Entry) populate(info os.FileInfo) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		e.populateFromFileMode(info)
		return
	}

	// Classify the entry.
	mode := Mode(stat.Mode)
	e.Type = mode.Type()

	// Compute permissions.
	e.Permissions = fields.PermissionsPlus{
		FileType:    e.Type,
		Permissions: fields.PermissionsFromMode(uint32(stat.Mode)),
		Xattrs:      hasExtendedAttributes(e.Path),
	}

	// Compute counts.
	e.Links = fields.NewLinks(e.Type, uint64(stat.Nlink))
	e.Inode = fields.Inode(stat.Ino)
	e.Blocks = blocksFor(e.Type, uint64(stat.Blocks))

	// Compute the size.
	var device fields.DeviceIDs
	if e.Type.IsDevice() {
		rdev := uint64(stat.Rdev)
		device = deviceIDs(unix.Major(rdev), unix.Minor(rdev))
	}
	e.Size = sizeFor(e.Type, uint64(stat.Size), device)

	// Record ownership.
	e.User = fields.User(stat.Uid)
	e.Group = fields.Group(stat.Gid)
}

// populateFromFileMode fills in what it can from portable metadata.
func (e *Entry) populateFromFileMode(info os.FileInfo) {
	mode := info.Mode()
	switch {
	case mode.IsDir():
		e.Type = fields.TypeDirectory
	case mode.IsRegular():
		e.Type = fields.TypeFile
	case mode&os.ModeSymlink != 0:
		e.Type = fields.TypeLink
	case mode&os.ModeNamedPipe != 0:
		e.Type = fields.TypePipe
	case mode&os.ModeSocket != 0:
		e.Type = fields.TypeSocket
	case mode&os.ModeCharDevice != 0:
		e.Type = fields.TypeCharDevice
	case mode&os.ModeDevice != 0:
		e.Type = fields.TypeBlockDevice
	default:
		e.Type = fields.TypeSpecial
	}
	e.Permissions = fields.PermissionsPlus{
		FileType:    e.Type,
		Permissions: fields.PermissionsFromMode(uint32(mode.Perm())),
	}
	e.Links = fields.NewLinks(e.Type, 1)
	e.Blocks = blocksFor(e.Type, 0)
	e.Size = sizeFor(e.Type, uint64(info.Size()), fields.DeviceIDs{})
}
