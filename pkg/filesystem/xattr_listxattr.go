//go:build linux || darwin

package filesystem

import (
	"golang.org/x/sys/unix"
)

// hasExtendedAttributes returns whether or not the entry at path (which is not
// followed if it's a symbolic link) has any extended attributes. Failures are
// treated as an absence of attributes.
func hasExtendedAttributes(path string) bool {
	size, err := unix.Llistxattr(path, nil)
	return err == nil && size > 0
}
