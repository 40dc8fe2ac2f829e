//go:build !windows

package fields

// User is the ID of the user that owns an entry. Looking up the corresponding
// name is left to the render package.
type User uint32

// Group is the ID of the group that an entry belongs to.
type Group uint32
