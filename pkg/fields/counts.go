package fields

// Links is a file's number of hard links on the filesystem.
//
// A regular file with more than one hard link is rare (but occasionally
// useful), so that case is computed once at construction and flagged for
// highlighting.
type Links struct {
	// Count is the actual link count.
	Count uint64
	// Multiple indicates that the entry is a regular file with more than one
	// hard link.
	Multiple bool
}

// NewLinks creates a link count for an entry of the specified type.
func NewLinks(t Type, count uint64) Links {
	return Links{
		Count:    count,
		Multiple: t.IsRegularFile() && count > 1,
	}
}

// Inode is a filesystem entry's inode number. On Windows this is a best-effort
// equivalent and is usually 0.
type Inode uint64

// Blocks is the number of blocks that an entry occupies on disk, if the entry
// is of a type that can report a meaningful block count.
type Blocks struct {
	// count is the block count. It is only meaningful if valid is true.
	count uint64
	// valid indicates whether or not a block count is present.
	valid bool
}

// BlocksSome creates a block usage value with the specified count.
func BlocksSome(count uint64) Blocks {
	return Blocks{count: count, valid: true}
}

// BlocksNone creates a block usage value for an entry that doesn't occupy
// blocks in any meaningful sense.
func BlocksNone() Blocks {
	return Blocks{}
}

// Count returns the block count and whether or not one is present.
func (b Blocks) Count() (uint64, bool) {
	return b.count, b.valid
}

// DeviceIDs are the major and minor device numbers displayed for device files
// in place of a size.
type DeviceIDs struct {
	// Major is the major device number.
	Major uint8
	// Minor is the minor device number.
	Minor uint8
}

// SizeKind identifies which representation a Size carries.
type SizeKind uint8

const (
	// SizeKindNone indicates that an entry has no size, or has a size that
	// isn't of interest (e.g. a directory).
	SizeKindNone SizeKind = iota
	// SizeKindSome indicates that an entry has a byte size.
	SizeKindSome
	// SizeKindDeviceIDs indicates that an entry is a device and carries device
	// numbers instead of a byte size.
	SizeKindDeviceIDs
)

// Size is an entry's size in bytes or, for block and character devices, its
// device numbers. Directories commonly have no size by policy: their on-disk
// "contents" are a list of names, and the size of that list is rarely useful.
// Which representation is used is decided by the caller that fills in the
// value, not by this type.
type Size struct {
	// kind is the representation that the size carries.
	kind SizeKind
	// bytes is the byte size. It is only meaningful for SizeKindSome.
	bytes uint64
	// device is the device numbers. It is only meaningful for
	// SizeKindDeviceIDs.
	device DeviceIDs
}

// SizeSome creates a size carrying a byte count.
func SizeSome(bytes uint64) Size {
	return Size{kind: SizeKindSome, bytes: bytes}
}

// SizeNone creates an empty size.
func SizeNone() Size {
	return Size{}
}

// SizeDevice creates a size carrying device numbers.
func SizeDevice(device DeviceIDs) Size {
	return Size{kind: SizeKindDeviceIDs, device: device}
}

// Kind returns the size's representation.
func (s Size) Kind() SizeKind {
	return s.kind
}

// Bytes returns the byte size and whether or not the size carries one.
func (s Size) Bytes() (uint64, bool) {
	return s.bytes, s.kind == SizeKindSome
}

// Device returns the device numbers and whether or not the size carries them.
func (s Size) Device() (DeviceIDs, bool) {
	return s.device, s.kind == SizeKindDeviceIDs
}
