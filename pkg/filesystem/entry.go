package filesystem

import (
	"os"

	"github.com/mutagen-io/extstat"

	"github.com/mutagen-io/lsfields/pkg/fields"
)

// Entry is the complete set of field values for a filesystem entry.
type Entry struct {
	// Path is the path used to obtain the entry's metadata.
	Path string
	// Name is the base name of the entry.
	Name string
	// Type is the entry type.
	Type fields.Type
	// Permissions are the entry's type, permission bits (or attributes on
	// Windows), and extended attribute presence.
	Permissions fields.PermissionsPlus
	// Links is the entry's hard link count.
	Links fields.Links
	// Inode is the entry's inode number.
	Inode fields.Inode
	// Blocks is the entry's block count.
	Blocks fields.Blocks
	// Size is the entry's size.
	Size fields.Size
	// User is the entry's owner.
	User fields.User
	// Group is the entry's group.
	Group fields.Group
	// Modified is the entry's modification time.
	Modified fields.Time
	// Accessed is the entry's access time.
	Accessed fields.Time
	// Changed is the entry's status change time. On Windows, where there is no
	// such time, it is equal to the modification time.
	Changed fields.Time
	// Created is the entry's creation time. Where the platform doesn't record
	// one (e.g. Linux), it's equal to the modification time.
	Created fields.Time
	// Git is the entry's Git status. It is set to the default status and is
	// left for the caller to fill in.
	Git fields.Git
}

// NewEntry computes an entry's fields from metadata that has already been
// obtained (usually via os.Lstat). It doesn't perform any further metadata
// queries beyond checking for extended attributes.
func NewEntry(path string, info os.FileInfo) *Entry {
	entry := &Entry{
		Path: path,
		Name: info.Name(),
		Git:  fields.DefaultGit(),
	}

	// Fill in platform-specific fields.
	entry.populate(info)

	// Extract timestamps. Without platform metadata, only the modification
	// time is known.
	if !hasPlatformMetadata(info) {
		modified := fields.TimeFromStd(info.ModTime())
		entry.Modified = modified
		entry.Accessed = modified
		entry.Changed = modified
		entry.Created = modified
		return entry
	}
	times := extstat.New(info)
	entry.Modified = fields.TimeFromStd(times.ModTime)
	entry.Accessed = fields.TimeFromStd(times.AccessTime)
	entry.Changed = fields.TimeFromStd(times.ChangeTime)
	entry.Created = fields.TimeFromStd(times.BirthTime)

	// Done.
	return entry
}
