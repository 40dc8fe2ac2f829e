package filesystem

import (
	"strings"
)

// IsHidden returns whether or not an entry is hidden. Entries with the hidden
// attribute are hidden, as are dot-prefixed names for consistency with POSIX
// conventions.
func IsHidden(entry *Entry) bool {
	return entry.Permissions.Attributes.Hidden || strings.IndexByte(entry.Name, '.') == 0
}
