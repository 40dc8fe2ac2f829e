package fields

import (
	"testing"
)

func TestLinksMultiple(t *testing.T) {
	for _, typ := range allTypes {
		for _, count := range []uint64{0, 1, 2, 17} {
			links := NewLinks(typ, count)
			if links.Count != count {
				t.Errorf("link count not preserved for %s: %d != %d", typ, links.Count, count)
			}
			expected := typ == TypeFile && count > 1
			if links.Multiple != expected {
				t.Errorf("incorrect multiple flag for %s with %d links", typ, count)
			}
		}
	}
}

func TestBlocks(t *testing.T) {
	if count, ok := BlocksSome(8).Count(); !ok || count != 8 {
		t.Error("block count not preserved")
	}
	if _, ok := BlocksNone().Count(); ok {
		t.Error("empty block usage reports a count")
	}
	if _, ok := (Blocks{}).Count(); ok {
		t.Error("zero block usage value reports a count")
	}
}

func TestSizeBytes(t *testing.T) {
	size := SizeSome(4096)
	if size.Kind() != SizeKindSome {
		t.Error("byte size has incorrect kind")
	}
	if bytes, ok := size.Bytes(); !ok || bytes != 4096 {
		t.Error("byte size not preserved")
	}
	if _, ok := size.Device(); ok {
		t.Error("byte size reports device numbers")
	}
}

func TestSizeNone(t *testing.T) {
	for _, size := range []Size{SizeNone(), {}} {
		if size.Kind() != SizeKindNone {
			t.Error("empty size has incorrect kind")
		}
		if _, ok := size.Bytes(); ok {
			t.Error("empty size reports bytes")
		}
		if _, ok := size.Device(); ok {
			t.Error("empty size reports device numbers")
		}
	}
}

func TestSizeDevice(t *testing.T) {
	size := SizeDevice(DeviceIDs{Major: 8, Minor: 0})
	if size.Kind() != SizeKindDeviceIDs {
		t.Error("device size has incorrect kind")
	}
	if device, ok := size.Device(); !ok {
		t.Error("device size doesn't report device numbers")
	} else if device.Major != 8 || device.Minor != 0 {
		t.Error("device numbers not preserved")
	}
	if _, ok := size.Bytes(); ok {
		t.Error("device size reports bytes")
	}
}
