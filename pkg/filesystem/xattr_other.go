//go:build !windows && !linux && !darwin

package filesystem

// hasExtendedAttributes always returns false on platforms where extended
// attributes aren't queried.
func hasExtendedAttributes(_ string) bool {
	return false
}
