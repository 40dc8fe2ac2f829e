package render

import (
	"github.com/pkg/errors"

	"github.com/mutagen-io/lsfields/pkg/fields"
	"github.com/mutagen-io/lsfields/pkg/identity"
)

// User renders an entry's owner. The entry's security descriptor is acquired
// and released within this call.
func (o *Ownership) User(user fields.User, colours UserColours) TextCell {
	var cell TextCell
	err := identity.WithNamedSecurityInfo(user.Path, func(info *identity.NamedSecurityInfo) error {
		// Compute the display text.
		var text string
		if o.Format == UserFormatNumeric {
			sid, err := info.OwnerSID()
			if err != nil {
				return err
			}
			text = sid
		} else {
			account, err := info.LookupOwner()
			if err != nil {
				return err
			}
			text = account.String()
		}

		// Select the style.
		style := colours.SomeoneElse()
		if info.OwnerIsCurrentUser() {
			style = colours.You()
		}

		// Success.
		cell = Paint(style, text)
		return nil
	})
	if err != nil {
		o.Logger.Error(errors.Wrap(err, "unable to look up windows user name"))
		return errorCell()
	}
	return cell
}

// Group renders an entry's group. The entry's security descriptor is acquired
// and released within this call.
func (o *Ownership) Group(group fields.Group, colours GroupColours) TextCell {
	var cell TextCell
	err := identity.WithNamedSecurityInfo(group.Path, func(info *identity.NamedSecurityInfo) error {
		var text string
		if o.Format == UserFormatNumeric {
			sid, err := info.GroupSID()
			if err != nil {
				return err
			}
			text = sid
		} else {
			account, err := info.LookupGroup()
			if err != nil {
				return err
			}
			text = account.String()
		}

		style := colours.NotYours()
		if info.GroupIsCurrentGroup() {
			style = colours.Yours()
		}

		cell = Paint(style, text)
		return nil
	})
	if err != nil {
		o.Logger.Error(errors.Wrap(err, "unable to look up windows group name"))
		return errorCell()
	}
	return cell
}
