package render

import (
	"github.com/fatih/color"
)

// UserColours is the style policy for rendering an entry's owner.
type UserColours interface {
	// You is the style for entries owned by the viewing user.
	You() *color.Color
	// SomeoneElse is the style for entries owned by anybody else.
	SomeoneElse() *color.Color
}

// GroupColours is the style policy for rendering an entry's group.
type GroupColours interface {
	// Yours is the style for groups that the viewing user belongs to.
	Yours() *color.Color
	// NotYours is the style for any other group.
	NotYours() *color.Color
}

// Theme is a complete set of styles for rendering a listing. It implements
// UserColours and GroupColours.
type Theme struct {
	// Entry type characters.
	Directory   *color.Color
	File        *color.Color
	Link        *color.Color
	Pipe        *color.Color
	Socket      *color.Color
	CharDevice  *color.Color
	BlockDevice *color.Color
	Special     *color.Color

	// Permission and attribute characters.
	Read        *color.Color
	Write       *color.Color
	Execute     *color.Color
	SpecialBit  *color.Color
	Attribute   *color.Color
	Punctuation *color.Color
	Xattr       *color.Color
	Octal       *color.Color

	// Counts and sizes.
	Links         *color.Color
	LinksMultiple *color.Color
	Inode         *color.Color
	Blocks        *color.Color
	Size          *color.Color
	DeviceMajor   *color.Color
	DeviceMinor   *color.Color

	// Timestamps.
	Date *color.Color

	// Ownership.
	UserYou         *color.Color
	UserSomeoneElse *color.Color
	GroupYours      *color.Color
	GroupNotYours   *color.Color

	// Git status characters.
	GitNew        *color.Color
	GitModified   *color.Color
	GitDeleted    *color.Color
	GitRenamed    *color.Color
	GitTypeChange *color.Color
	GitIgnored    *color.Color
	GitConflicted *color.Color
}

// DefaultTheme returns the default set of styles.
func DefaultTheme() *Theme {
	return &Theme{
		Directory:   color.New(color.FgBlue, color.Bold),
		File:        color.New(color.Reset),
		Link:        color.New(color.FgCyan),
		Pipe:        color.New(color.FgYellow),
		Socket:      color.New(color.FgRed, color.Bold),
		CharDevice:  color.New(color.FgYellow, color.Bold),
		BlockDevice: color.New(color.FgYellow, color.Bold),
		Special:     color.New(color.FgYellow),

		Read:        color.New(color.FgYellow, color.Bold),
		Write:       color.New(color.FgRed, color.Bold),
		Execute:     color.New(color.FgGreen, color.Bold),
		SpecialBit:  color.New(color.FgMagenta),
		Attribute:   color.New(color.FgYellow, color.Bold),
		Punctuation: color.New(color.FgHiBlack),
		Xattr:       color.New(color.Reset),
		Octal:       color.New(color.FgMagenta),

		Links:         color.New(color.FgRed, color.Bold),
		LinksMultiple: color.New(color.FgRed, color.BgYellow),
		Inode:         color.New(color.FgMagenta),
		Blocks:        color.New(color.FgCyan),
		Size:          color.New(color.FgGreen, color.Bold),
		DeviceMajor:   color.New(color.FgGreen, color.Bold),
		DeviceMinor:   color.New(color.FgGreen),

		Date: color.New(color.FgBlue),

		UserYou:         color.New(color.FgYellow, color.Bold),
		UserSomeoneElse: color.New(color.Reset),
		GroupYours:      color.New(color.FgYellow, color.Bold),
		GroupNotYours:   color.New(color.Reset),

		GitNew:        color.New(color.FgGreen),
		GitModified:   color.New(color.FgBlue),
		GitDeleted:    color.New(color.FgRed),
		GitRenamed:    color.New(color.FgYellow),
		GitTypeChange: color.New(color.FgMagenta),
		GitIgnored:    color.New(color.FgHiBlack),
		GitConflicted: color.New(color.FgRed),
	}
}

// You implements UserColours.You.
func (t *Theme) You() *color.Color {
	return t.UserYou
}

// SomeoneElse implements UserColours.SomeoneElse.
func (t *Theme) SomeoneElse() *color.Color {
	return t.UserSomeoneElse
}

// Yours implements GroupColours.Yours.
func (t *Theme) Yours() *color.Color {
	return t.GroupYours
}

// NotYours implements GroupColours.NotYours.
func (t *Theme) NotYours() *color.Color {
	return t.GroupNotYours
}
