package render

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// typeCharacter returns the character and style for an entry type.
func typeCharacter(t fields.Type, theme *Theme) (string, *color.Color) {
	switch t {
	case fields.TypeDirectory:
		return "d", theme.Directory
	case fields.TypeFile:
		return ".", theme.File
	case fields.TypeLink:
		return "l", theme.Link
	case fields.TypePipe:
		return "|", theme.Pipe
	case fields.TypeSocket:
		return "s", theme.Socket
	case fields.TypeCharDevice:
		return "c", theme.CharDevice
	case fields.TypeBlockDevice:
		return "b", theme.BlockDevice
	default:
		return "?", theme.Special
	}
}

// Type renders an entry type as a single character.
func Type(t fields.Type, theme *Theme) TextCell {
	character, style := typeCharacter(t, theme)
	return Paint(style, character)
}

// Links renders a hard link count, highlighting regular files with more than
// one link.
func Links(links fields.Links, theme *Theme) TextCell {
	style := theme.Links
	if links.Multiple {
		style = theme.LinksMultiple
	}
	return Paint(style, strconv.FormatUint(links.Count, 10))
}

// Inode renders an inode number.
func Inode(inode fields.Inode, theme *Theme) TextCell {
	return Paint(theme.Inode, strconv.FormatUint(uint64(inode), 10))
}

// Blocks renders a block count, or a dash for entries without one.
func Blocks(blocks fields.Blocks, theme *Theme) TextCell {
	if count, ok := blocks.Count(); ok {
		return Paint(theme.Blocks, strconv.FormatUint(count, 10))
	}
	return Paint(theme.Punctuation, "-")
}

// SizeFormat controls how byte sizes are displayed.
type SizeFormat uint8

const (
	// SizeFormatDecimal displays sizes with SI (power of 1000) prefixes.
	SizeFormatDecimal SizeFormat = iota
	// SizeFormatBinary displays sizes with IEC (power of 1024) prefixes.
	SizeFormatBinary
	// SizeFormatBytes displays raw byte counts.
	SizeFormatBytes
)

// Size renders an entry's size. Devices are rendered as "major,minor" and
// entries without a size as a dash.
func Size(size fields.Size, format SizeFormat, theme *Theme) TextCell {
	switch size.Kind() {
	case fields.SizeKindSome:
		bytes, _ := size.Bytes()
		var text string
		switch format {
		case SizeFormatBinary:
			text = humanize.IBytes(bytes)
		case SizeFormatBytes:
			text = humanize.Comma(int64(bytes))
		default:
			text = humanize.Bytes(bytes)
		}
		return Paint(theme.Size, text)
	case fields.SizeKindDeviceIDs:
		device, _ := size.Device()
		cell := Paint(theme.DeviceMajor, strconv.Itoa(int(device.Major)))
		cell.Append(theme.Punctuation, ",")
		cell.Append(theme.DeviceMinor, strconv.Itoa(int(device.Minor)))
		return cell
	default:
		return Paint(theme.Punctuation, "-")
	}
}

// TimeFormat controls how timestamps are displayed.
type TimeFormat struct {
	// Layout is a time layout as accepted by time.Time.Format.
	Layout string
	// Location is the time zone used for display. If nil, the local time zone
	// is used.
	Location *time.Location
}

// DefaultTimeLayout is the layout used when a TimeFormat has none.
const DefaultTimeLayout = "2 Jan 15:04"

// Time renders a timestamp.
func Time(t fields.Time, format TimeFormat, theme *Theme) TextCell {
	location := format.Location
	if location == nil {
		location = time.Local
	}
	layout := format.Layout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return Paint(theme.Date, t.Std().In(location).Format(layout))
}

// gitCharacter returns the character and style for one side of a Git status.
func gitCharacter(status fields.GitStatus, theme *Theme) (string, *color.Color) {
	switch status {
	case fields.GitStatusNew:
		return "N", theme.GitNew
	case fields.GitStatusModified:
		return "M", theme.GitModified
	case fields.GitStatusDeleted:
		return "D", theme.GitDeleted
	case fields.GitStatusRenamed:
		return "R", theme.GitRenamed
	case fields.GitStatusTypeChange:
		return "T", theme.GitTypeChange
	case fields.GitStatusIgnored:
		return "I", theme.GitIgnored
	case fields.GitStatusConflicted:
		return "U", theme.GitConflicted
	default:
		return "-", theme.Punctuation
	}
}

// Git renders a Git status as two characters: staged, then unstaged.
func Git(git fields.Git, theme *Theme) TextCell {
	staged, stagedStyle := gitCharacter(git.Staged, theme)
	unstaged, unstagedStyle := gitCharacter(git.Unstaged, theme)
	cell := Paint(stagedStyle, staged)
	cell.Append(unstagedStyle, unstaged)
	return cell
}

// Name renders an entry name, styled according to the entry's type.
func Name(name string, t fields.Type, theme *Theme) TextCell {
	_, style := typeCharacter(t, theme)
	return Paint(style, name)
}
