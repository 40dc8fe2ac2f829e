package filesystem

import (
	"os"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// Mode is provided by the os package's FileMode implementation on Windows.
type Mode os.FileMode

const (
	// ModeTypeMask is a bit mask that isolates type information from a Mode.
	ModeTypeMask = Mode(os.ModeType)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(os.ModeDir)
	// ModeTypeFile represents a file.
	ModeTypeFile = Mode(0)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(os.ModeSymlink)
	// ModeTypePipe represents a named pipe.
	ModeTypePipe = Mode(os.ModeNamedPipe)
	// ModeTypeCharDevice represents a character device. The os package sets
	// both the device and character device bits for these.
	ModeTypeCharDevice = Mode(os.ModeDevice | os.ModeCharDevice)
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
	case ModeTypeCharDevice:
		return fields.TypeCharDevice
	default:
		return fields.TypeSpecial
	}
}
