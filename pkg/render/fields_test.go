package render

import (
	"testing"
	"time"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

func TestTypeCharacters(t *testing.T) {
	theme := DefaultTheme()
	expected := map[fields.Type]string{
		fields.TypeDirectory:   "d",
		fields.TypeFile:        ".",
		fields.TypeLink:        "l",
		fields.TypePipe:        "|",
		fields.TypeSocket:      "s",
		fields.TypeCharDevice:  "c",
		fields.TypeBlockDevice: "b",
		fields.TypeSpecial:     "?",
	}
	for typ, character := range expected {
		if cell := Type(typ, theme); cell.Contents() != character {
			t.Errorf("%s rendered as %q", typ, cell.Contents())
		}
	}
}

func TestLinksHighlight(t *testing.T) {
	theme := DefaultTheme()
	single := Links(fields.NewLinks(fields.TypeFile, 1), theme)
	if single.Contents() != "1" || single.Spans[0].Style != theme.Links {
		t.Error("single link rendered incorrectly")
	}
	multiple := Links(fields.NewLinks(fields.TypeFile, 3), theme)
	if multiple.Contents() != "3" || multiple.Spans[0].Style != theme.LinksMultiple {
		t.Error("multiple links not highlighted")
	}
	directory := Links(fields.NewLinks(fields.TypeDirectory, 3), theme)
	if directory.Spans[0].Style != theme.Links {
		t.Error("directory links highlighted")
	}
}

func TestInode(t *testing.T) {
	if cell := Inode(fields.Inode(1234567), DefaultTheme()); cell.Contents() != "1234567" {
		t.Error("inode rendered incorrectly:", cell.Contents())
	}
}

func TestBlocks(t *testing.T) {
	theme := DefaultTheme()
	if cell := Blocks(fields.BlocksSome(16), theme); cell.Contents() != "16" {
		t.Error("block count rendered incorrectly:", cell.Contents())
	}
	if cell := Blocks(fields.BlocksNone(), theme); cell.Contents() != "-" {
		t.Error("absent block count rendered incorrectly:", cell.Contents())
	}
}

func TestSize(t *testing.T) {
	theme := DefaultTheme()
	cases := []struct {
		size     fields.Size
		format   SizeFormat
		expected string
	}{
		{fields.SizeSome(1500), SizeFormatDecimal, "1.5 kB"},
		{fields.SizeSome(2048), SizeFormatBinary, "2.0 KiB"},
		{fields.SizeSome(1234567), SizeFormatBytes, "1,234,567"},
		{fields.SizeSome(3), SizeFormatDecimal, "3 B"},
		{fields.SizeNone(), SizeFormatDecimal, "-"},
		{fields.SizeDevice(fields.DeviceIDs{Major: 8, Minor: 0}), SizeFormatDecimal, "8,0"},
		{fields.SizeDevice(fields.DeviceIDs{Major: 1, Minor: 3}), SizeFormatBinary, "1,3"},
	}
	for i, c := range cases {
		if cell := Size(c.size, c.format, theme); cell.Contents() != c.expected {
			t.Errorf("case %d: size rendered as %q, expected %q", i, cell.Contents(), c.expected)
		}
	}
}

func TestTime(t *testing.T) {
	format := TimeFormat{Layout: "2006-01-02 15:04:05", Location: time.UTC}
	cell := Time(fields.Time{Seconds: 86400 + 3661, Nanoseconds: 5}, format, DefaultTheme())
	if cell.Contents() != "1970-01-02 01:01:01" {
		t.Error("time rendered incorrectly:", cell.Contents())
	}
}

func TestTimeDefaultLayout(t *testing.T) {
	format := TimeFormat{Location: time.UTC}
	cell := Time(fields.Time{Seconds: 0}, format, DefaultTheme())
	if cell.Contents() != "1 Jan 00:00" {
		t.Error("time rendered incorrectly with default layout:", cell.Contents())
	}
}

func TestGit(t *testing.T) {
	theme := DefaultTheme()
	if cell := Git(fields.DefaultGit(), theme); cell.Contents() != "--" {
		t.Error("unmodified status rendered incorrectly:", cell.Contents())
	}
	git := fields.Git{Staged: fields.GitStatusNew, Unstaged: fields.GitStatusModified}
	cell := Git(git, theme)
	if cell.Contents() != "NM" {
		t.Error("status rendered incorrectly:", cell.Contents())
	}
	if cell.Width != 2 {
		t.Error("status has incorrect width:", cell.Width)
	}
	if cell.Spans[0].Style != theme.GitNew || cell.Spans[1].Style != theme.GitModified {
		t.Error("status styled incorrectly")
	}
	conflicted := fields.Git{Staged: fields.GitStatusConflicted, Unstaged: fields.GitStatusIgnored}
	if cell := Git(conflicted, theme); cell.Contents() != "UI" {
		t.Error("status rendered incorrectly:", cell.Contents())
	}
}

func TestName(t *testing.T) {
	theme := DefaultTheme()
	cell := Name("src", fields.TypeDirectory, theme)
	if cell.Contents() != "src" || cell.Spans[0].Style != theme.Directory {
		t.Error("directory name rendered incorrectly")
	}
	if cell = Name("main.go", fields.TypeFile, theme); cell.Spans[0].Style != theme.File {
		t.Error("file name rendered incorrectly")
	}
}
