//go:build !windows

package identity

import (
	"os"
	"os/user"
	"strconv"

	"github.com/pkg/errors"
)

// SystemAccounts resolves numeric user and group IDs against the local account
// database. Its zero value is ready for use and it is safe for concurrent use.
// It performs no caching.
type SystemAccounts struct{}

// UserName returns the name of the user with the specified ID. If no such user
// exists, it returns false and a nil error.
func (SystemAccounts) UserName(uid uint32) (string, bool, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		if _, ok := err.(user.UnknownUserIdError); ok {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "unable to look up user")
	}
	return u.Username, true, nil
}

// GroupName returns the name of the group with the specified ID. If no such
// group exists, it returns false and a nil error.
func (SystemAccounts) GroupName(gid uint32) (string, bool, error) {
	g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		if _, ok := err.(user.UnknownGroupIdError); ok {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "unable to look up group")
	}
	return g.Name, true, nil
}

// CurrentUID returns the user ID of the current process.
func (SystemAccounts) CurrentUID() uint32 {
	return uint32(os.Getuid())
}

// CurrentGIDs returns the primary and supplementary group IDs of the current
// process. Supplementary groups are omitted if they can't be determined.
func (SystemAccounts) CurrentGIDs() []uint32 {
	gids := []uint32{uint32(os.Getgid())}
	if groups, err := os.Getgroups(); err == nil {
		for _, g := range groups {
			gids = append(gids, uint32(g))
		}
	}
	return gids
}
