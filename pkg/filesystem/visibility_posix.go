//go:build !windows

package filesystem

import (
	"strings"
)

// IsHidden returns whether or not an entry is hidden. POSIX platforms don't
// have the notion of a hidden attribute, they only hide dot-prefixed names.
func IsHidden(entry *Entry) bool {
	return strings.IndexByte(entry.Name, '.') == 0
}
