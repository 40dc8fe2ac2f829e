package render

import (
	"github.com/mutagen-io/lsfields/pkg/logging"
)

// UserFormat controls how owners and groups are displayed.
type UserFormat uint8

const (
	// UserFormatName displays account names where they can be resolved.
	UserFormatName UserFormat = iota
	// UserFormatNumeric displays raw identifiers: numeric IDs on POSIX
	// systems and SID strings on Windows.
	UserFormatNumeric
)

// AccountDatabase resolves numeric user and group IDs on POSIX systems. It is
// supplied by the caller so that lookups can be cached across entries. It is
// not consulted on Windows, where identities are resolved from each entry's
// security descriptor.
type AccountDatabase interface {
	// UserName returns the name of a user, or false if the ID is unknown.
	UserName(uid uint32) (string, bool, error)
	// GroupName returns the name of a group, or false if the ID is unknown.
	GroupName(gid uint32) (string, bool, error)
	// CurrentUID returns the user ID of the viewing user.
	CurrentUID() uint32
	// CurrentGIDs returns the IDs of the groups that the viewing user belongs
	// to.
	CurrentGIDs() []uint32
}

// Ownership renders owner and group fields. Resolution happens when a field is
// rendered, not when it is created, and failures are logged and rendered as a
// placeholder rather than returned.
type Ownership struct {
	// Format is the display format.
	Format UserFormat
	// Accounts is the account database used on POSIX systems. If nil, numeric
	// IDs are displayed and nothing is highlighted.
	Accounts AccountDatabase
	// Logger receives resolution failures. It may be nil.
	Logger *logging.Logger
}
