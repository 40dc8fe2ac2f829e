package filesystem

import (
	"testing"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

func TestSizeForBlockDevice(t *testing.T) {
	size := sizeFor(fields.TypeBlockDevice, 4096, deviceIDs(8, 0))
	if size.Kind() != fields.SizeKindDeviceIDs {
		t.Fatal("block device size isn't device IDs")
	}
	if _, ok := size.Bytes(); ok {
		t.Error("block device has a byte count")
	}
	if device, _ := size.Device(); device.Major != 8 || device.Minor != 0 {
		t.Error("incorrect device IDs:", device)
	}
}

func TestSizeForDirectory(t *testing.T) {
	if size := sizeFor(fields.TypeDirectory, 4096, fields.DeviceIDs{}); size.Kind() != fields.SizeKindNone {
		t.Error("directory has a size")
	}
}

func TestSizeForFile(t *testing.T) {
	size := sizeFor(fields.TypeFile, 1234, fields.DeviceIDs{})
	if bytes, ok := size.Bytes(); !ok || bytes != 1234 {
		t.Error("incorrect file size:", bytes, ok)
	}
}

func TestBlocksForDirectory(t *testing.T) {
	if _, ok := blocksFor(fields.TypeDirectory, 8).Count(); ok {
		t.Error("directory reports blocks")
	}
}

func TestBlocksFor(t *testing.T) {
	for _, typ := range []fields.Type{fields.TypeFile, fields.TypeLink} {
		if count, ok := blocksFor(typ, 8).Count(); !ok || count != 8 {
			t.Errorf("%s reports incorrect blocks: %d, %t", typ, count, ok)
		}
	}
	for _, typ := range []fields.Type{fields.TypePipe, fields.TypeSocket, fields.TypeCharDevice, fields.TypeBlockDevice} {
		if _, ok := blocksFor(typ, 8).Count(); ok {
			t.Errorf("%s reports blocks", typ)
		}
	}
}

func TestDeviceIDsTruncation(t *testing.T) {
	if device := deviceIDs(259, 513); device.Major != 3 || device.Minor != 1 {
		t.Error("device IDs not truncated:", device)
	}
}
