package fields

// User identifies the owner of an entry. Windows has no cheap mapping from a
// numeric ID to a name, so the value only records the entry's path. The owner
// SID is read from the path's security descriptor at render time, and that
// descriptor lives only as long as the lookup that needs it.
type User struct {
	// Path is the path of the entry.
	Path string
}

// Group identifies the group of an entry. It is resolved the same way as User.
type Group struct {
	// Path is the path of the entry.
	Path string
}
