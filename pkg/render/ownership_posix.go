//go:build !windows

package render

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// User renders an entry's owner.
func (o *Ownership) User(user fields.User, colours UserColours) TextCell {
	// Select the style.
	style := colours.SomeoneElse()
	if o.Accounts != nil && uint32(user) == o.Accounts.CurrentUID() {
		style = colours.You()
	}

	// Resolve the name, falling back to the numeric ID for unknown users.
	text := strconv.FormatUint(uint64(user), 10)
	if o.Format == UserFormatName && o.Accounts != nil {
		if name, ok, err := o.Accounts.UserName(uint32(user)); err != nil {
			o.Logger.Error(errors.Wrapf(err, "unable to look up user name for %d", user))
			return errorCell()
		} else if ok {
			text = name
		}
	}

	// Done.
	return Paint(style, text)
}

// Group renders an entry's group.
func (o *Ownership) Group(group fields.Group, colours GroupColours) TextCell {
	style := colours.NotYours()
	if o.Accounts != nil {
		for _, gid := range o.Accounts.CurrentGIDs() {
			if gid == uint32(group) {
				style = colours.Yours()
				break
			}
		}
	}

	text := strconv.FormatUint(uint64(group), 10)
	if o.Format == UserFormatName && o.Accounts != nil {
		if name, ok, err := o.Accounts.GroupName(uint32(group)); err != nil {
			o.Logger.Error(errors.Wrapf(err, "unable to look up group name for %d", group))
			return errorCell()
		} else if ok {
			text = name
		}
	}

	return Paint(style, text)
}
