// Package fields provides the tagged value types that describe a single
// directory entry's metadata: its type, permission bits (or attributes on
// Windows), link count, inode, block usage, size, timestamps, ownership, and
// version control status. Each type wraps a raw, platform-native value that has
// already been obtained by the caller. Nothing in this package performs I/O,
// and rendering these values as text is left to the render package.
//
// Some types change shape depending on the build target. Permissions and
// OctalPermissions only exist on POSIX systems, Attributes only exists on
// Windows, and User and Group are numeric IDs on POSIX systems but path-bound
// identity references on Windows. PermissionsPlus carries whichever payload
// the target supports under a single name.
package fields
