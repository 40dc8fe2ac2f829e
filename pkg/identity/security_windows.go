package identity

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/windows"

	aclapi "github.com/hectane/go-acl/api"
)

// These are indirections over the system calls used by this file so that tests
// can observe and control them.
var (
	getNamedSecurityInfo = aclapi.GetNamedSecurityInfo
	localFree            = windows.LocalFree
	lookupAccountSid     = windows.LookupAccountSid
)

// NamedSecurityInfo is an acquired security descriptor for a filesystem path,
// along with the owner and group SIDs that it contains. The SIDs point into
// the descriptor's memory, so they're never handed out directly: everything
// that needs them is a method on the live value. A NamedSecurityInfo is
// exclusively owned by the goroutine that acquired it and must be closed
// exactly once, after which its methods fail.
type NamedSecurityInfo struct {
	// owner is the owner SID. It points into the descriptor.
	owner *windows.SID
	// group is the group SID. It points into the descriptor.
	group *windows.SID
	// descriptor is the security descriptor handle. It is 0 once released.
	descriptor windows.Handle
}

// AcquireNamedSecurityInfo requests the owner and group information for the
// filesystem entry at path. The caller must close the result.
func AcquireNamedSecurityInfo(path string) (*NamedSecurityInfo, error) {
	// Query the owner, group, and backing descriptor.
	info := &NamedSecurityInfo{}
	err := getNamedSecurityInfo(
		path,
		aclapi.SE_FILE_OBJECT,
		aclapi.OWNER_SECURITY_INFORMATION|aclapi.GROUP_SECURITY_INFORMATION,
		&info.owner,
		&info.group,
		nil,
		nil,
		&info.descriptor,
	)

	// If the query failed, release anything that it may have allocated before
	// classifying the failure.
	if err != nil {
		info.Close()
		return nil, classifyAcquisitionError(err)
	}

	// Validate the result, releasing the descriptor if it's unusable.
	if err := checkAcquisition(
		info.owner != nil && info.owner.IsValid(),
		info.group != nil && info.group.IsValid(),
		info.descriptor != 0,
	); err != nil {
		info.Close()
		return nil, err
	}

	// Success.
	return info, nil
}

// classifyAcquisitionError maps a descriptor query failure to a resolution
// error.
func classifyAcquisitionError(err error) error {
	switch err {
	case windows.ERROR_ACCESS_DENIED, windows.ERROR_PRIVILEGE_NOT_HELD:
		return newError(KindPermissionDenied, "security descriptor inaccessible", err)
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return newError(KindNotFound, "unable to locate path", err)
	default:
		return newError(KindInvalidInput, "unable to query security information", err)
	}
}

// WithNamedSecurityInfo acquires the security information for path, invokes
// callback with it, and releases it before returning, regardless of how the
// callback exits. The callback must not retain the value.
func WithNamedSecurityInfo(path string, callback func(*NamedSecurityInfo) error) (err error) {
	info, err := AcquireNamedSecurityInfo(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := info.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return callback(info)
}

// Close releases the security descriptor. Only the first call releases
// anything; subsequent calls are no-ops.
func (i *NamedSecurityInfo) Close() error {
	// Check whether there's anything left to release.
	if i.descriptor == 0 {
		return nil
	}

	// Invalidate the SIDs and the handle before freeing so that nothing can
	// observe them afterward, even if the free fails.
	descriptor := i.descriptor
	i.owner, i.group, i.descriptor = nil, nil, 0

	// Free the descriptor.
	if _, err := localFree(descriptor); err != nil {
		return errors.Wrap(err, "unable to free security descriptor")
	}

	// Success.
	return nil
}

// live returns an error if the descriptor has already been released.
func (i *NamedSecurityInfo) live() error {
	if i.descriptor == 0 {
		return newError(KindInvalidInput, "security descriptor already released", nil)
	}
	return nil
}

// lookupSID resolves a SID from the descriptor against the local account
// database.
func lookupSID(sid *windows.SID) (Account, error) {
	return lookupAccount(func(name *uint16, nameLength *uint32, domain *uint16, domainLength *uint32) error {
		var use uint32
		return lookupAccountSid(nil, sid, name, nameLength, domain, domainLength, &use)
	})
}

// LookupOwner resolves the owner SID to an account.
func (i *NamedSecurityInfo) LookupOwner() (Account, error) {
	if err := i.live(); err != nil {
		return Account{}, err
	}
	return lookupSID(i.owner)
}

// LookupGroup resolves the group SID to an account.
func (i *NamedSecurityInfo) LookupGroup() (Account, error) {
	if err := i.live(); err != nil {
		return Account{}, err
	}
	return lookupSID(i.group)
}

// OwnerSID returns the string form of the owner SID (e.g. S-1-5-18).
func (i *NamedSecurityInfo) OwnerSID() (string, error) {
	if err := i.live(); err != nil {
		return "", err
	}
	return i.owner.String(), nil
}

// GroupSID returns the string form of the group SID.
func (i *NamedSecurityInfo) GroupSID() (string, error) {
	if err := i.live(); err != nil {
		return "", err
	}
	return i.group.String(), nil
}

// OwnerIsCurrentUser returns whether or not the owner SID is the user SID of
// the current process token. It returns false if either can't be determined.
func (i *NamedSecurityInfo) OwnerIsCurrentUser() bool {
	if i.live() != nil {
		return false
	}
	user, err := windows.GetCurrentProcessToken().GetTokenUser()
	if err != nil {
		return false
	}
	return i.owner.Equals(user.User.Sid)
}

// GroupIsCurrentGroup returns whether or not the group SID is the primary
// group SID of the current process token. It returns false if either can't be
// determined.
func (i *NamedSecurityInfo) GroupIsCurrentGroup() bool {
	if i.live() != nil {
		return false
	}
	group, err := windows.GetCurrentProcessToken().GetTokenPrimaryGroup()
	if err != nil {
		return false
	}
	return i.group.Equals(group.PrimaryGroup)
}
