package filesystem

import (
	"github.com/mutagen-io/lsfields/pkg/fields"
)

// sizeFor decides the size field for an entry. Directories have no size,
// devices show their device numbers, and everything else shows its byte count.
func sizeFor(t fields.Type, bytes uint64, device fields.DeviceIDs) fields.Size {
	switch {
	case t == fields.TypeDirectory:
		return fields.SizeNone()
	case t.IsDevice():
		return fields.SizeDevice(device)
	default:
		return fields.SizeSome(bytes)
	}
}

// blocksFor decides the block count field for an entry. Only regular files and
// symbolic links report blocks.
func blocksFor(t fields.Type, blocks uint64) fields.Blocks {
	if t == fields.TypeFile || t == fields.TypeLink {
		return fields.BlocksSome(blocks)
	}
	return fields.BlocksNone()
}

// deviceIDs truncates device numbers to the widths that the field model
// stores.
func deviceIDs(major, minor uint32) fields.DeviceIDs {
	return fields.DeviceIDs{Major: uint8(major), Minor: uint8(minor)}
}
