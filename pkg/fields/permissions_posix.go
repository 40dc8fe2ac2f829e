//go:build !windows

package fields

import (
	"golang.org/x/sys/unix"
)

// Permissions is an entry's POSIX permission bitfield, with one entry per bit.
type Permissions struct {
	UserRead     bool
	UserWrite    bool
	UserExecute  bool
	GroupRead    bool
	GroupWrite   bool
	GroupExecute bool
	OtherRead    bool
	OtherWrite   bool
	OtherExecute bool
	Sticky       bool
	SetGID       bool
	SetUID       bool
}

// PermissionsFromMode extracts the permission bits from a raw st_mode value.
// Type bits are ignored.
func PermissionsFromMode(mode uint32) Permissions {
	has := func(bit uint32) bool {
		return mode&bit != 0
	}
	return Permissions{
		UserRead:     has(unix.S_IRUSR),
		UserWrite:    has(unix.S_IWUSR),
		UserExecute:  has(unix.S_IXUSR),
		GroupRead:    has(unix.S_IRGRP),
		GroupWrite:   has(unix.S_IWGRP),
		GroupExecute: has(unix.S_IXGRP),
		OtherRead:    has(unix.S_IROTH),
		OtherWrite:   has(unix.S_IWOTH),
		OtherExecute: has(unix.S_IXOTH),
		Sticky:       has(unix.S_ISVTX),
		SetGID:       has(unix.S_ISGID),
		SetUID:       has(unix.S_ISUID),
	}
}

// Mode re-encodes the permissions as the low 12 bits of a st_mode value.
func (p Permissions) Mode() uint32 {
	var mode uint32
	set := func(condition bool, bit uint32) {
		if condition {
			mode |= bit
		}
	}
	set(p.UserRead, unix.S_IRUSR)
	set(p.UserWrite, unix.S_IWUSR)
	set(p.UserExecute, unix.S_IXUSR)
	set(p.GroupRead, unix.S_IRGRP)
	set(p.GroupWrite, unix.S_IWGRP)
	set(p.GroupExecute, unix.S_IXGRP)
	set(p.OtherRead, unix.S_IROTH)
	set(p.OtherWrite, unix.S_IWOTH)
	set(p.OtherExecute, unix.S_IXOTH)
	set(p.Sticky, unix.S_ISVTX)
	set(p.SetGID, unix.S_ISGID)
	set(p.SetUID, unix.S_ISUID)
	return mode
}

// PermissionsPlus fuses an entry's type, permission bits, and extended
// attribute presence into the single unit displayed in the first column of a
// long listing.
type PermissionsPlus struct {
	// FileType is the entry type.
	FileType Type
	// Permissions is the entry's permission bitfield.
	Permissions Permissions
	// Xattrs indicates that the entry has extended attributes.
	Xattrs bool
}

// OctalPermissions is a view of an entry's permission bits for octal display.
type OctalPermissions struct {
	Permissions Permissions
}

// Value returns the permission bits as a number suitable for octal formatting.
func (o OctalPermissions) Value() uint32 {
	return o.Permissions.Mode()
}
