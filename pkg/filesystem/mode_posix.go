//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// Mode is the raw underlying file mode from the Stat_t structure (as opposed
// to the os package's FileMode implementation).
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information. After masking,
	// the resulting value can be compared with any of the ModeType* values
	// (other than ModeTypeMask).
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeFile represents a file.
	ModeTypeFile = Mode(unix.S_IFREG)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)
	// ModeTypePipe represents a named pipe.
	ModeTypePipe = Mode(unix.S_IFIFO)
	// ModeTypeSocket represents a socket.
	ModeTypeSocket = Mode(unix.S_IFSOCK)
	// ModeTypeCharDevice represents a character device.
	ModeTypeCharDevice = Mode(unix.S_IFCHR)
	// ModeTypeBlockDevice represents a block device.
	ModeTypeBlockDevice = Mode(unix.S_IFBLK)
)

// Type classifies the mode.
func (m Mode) Type() fields.Type {
	switch m & ModeTypeMask {
	case ModeTypeDirectory:
		return fields.TypeDirectory
	case ModeTypeFile:
		return fields.TypeFile
	case ModeTypeSymbolicLink:
		return fields.TypeLink
	case ModeTypePipe:
		return fields.TypePipe
	case ModeTypeSocket:
		return fields.TypeSocket
	case ModeTypeCharDevice:
		return fields.TypeCharDevice
	case ModeTypeBlockDevice:
		return fields.TypeBlockDevice
	default:
		return fields.TypeSpecial
	}
}
