package fields

// Type is a filesystem entry's base type, as declared by the filesystem itself
// rather than inferred from its contents. A link is a type, but an image is
// just a regular file. The declaration order of the Type constants defines the
// order used when sorting by type.
type Type uint8

const (
	// TypeDirectory indicates a directory.
	TypeDirectory Type = iota
	// TypeFile indicates a regular file.
	TypeFile
	// TypeLink indicates a symbolic link.
	TypeLink
	// TypePipe indicates a named pipe (FIFO).
	TypePipe
	// TypeSocket indicates a Unix domain socket.
	TypeSocket
	// TypeCharDevice indicates a character device.
	TypeCharDevice
	// TypeBlockDevice indicates a block device.
	TypeBlockDevice
	// TypeSpecial indicates any other entry type that the filesystem reports.
	TypeSpecial
)

// IsRegularFile returns whether or not the type is TypeFile.
func (t Type) IsRegularFile() bool {
	return t == TypeFile
}

// IsDevice returns whether or not the type is a character or block device.
func (t Type) IsDevice() bool {
	return t == TypeCharDevice || t == TypeBlockDevice
}

// String provides a human-readable representation of a type.
func (t Type) String() string {
	switch t {
	case TypeDirectory:
		return "directory"
	case TypeFile:
		return "file"
	case TypeLink:
		return "link"
	case TypePipe:
		return "pipe"
	case TypeSocket:
		return "socket"
	case TypeCharDevice:
		return "character device"
	case TypeBlockDevice:
		return "block device"
	case TypeSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Types implements sort.Interface for a slice of entry types, ordering them by
// declaration order.
type Types []Type

// Len implements sort.Interface.Len.
func (t Types) Len() int {
	return len(t)
}

// Less implements sort.Interface.Less.
func (t Types) Less(i, j int) bool {
	return t[i] < t[j]
}

// Swap implements sort.Interface.Swap.
func (t Types) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}
