package fields

// GitStatus is one side (staged or unstaged) of a file's status in a Git
// repository. Whether or not a file is in a repository at all is handled by
// the caller, so there is no "untracked repository" status.
type GitStatus uint8

const (
	// GitStatusNotModified indicates a file that hasn't changed since the last
	// commit.
	GitStatusNotModified GitStatus = iota
	// GitStatusNew indicates a file that didn't exist for the last commit and
	// isn't ignored.
	GitStatusNew
	// GitStatusModified indicates a file that's been modified since the last
	// commit.
	GitStatusModified
	// GitStatusDeleted indicates a deleted file.
	GitStatusDeleted
	// GitStatusRenamed indicates a file that Git has tracked a rename for.
	GitStatusRenamed
	// GitStatusTypeChange indicates a file whose type (e.g. its permission
	// bits) has changed.
	GitStatusTypeChange
	// GitStatusIgnored indicates a file matched by an ignore rule.
	GitStatusIgnored
	// GitStatusConflicted indicates a file that's updated but unmerged.
	GitStatusConflicted
)

// String provides a human-readable representation of a status.
func (s GitStatus) String() string {
	switch s {
	case GitStatusNotModified:
		return "not modified"
	case GitStatusNew:
		return "new"
	case GitStatusModified:
		return "modified"
	case GitStatusDeleted:
		return "deleted"
	case GitStatusRenamed:
		return "renamed"
	case GitStatusTypeChange:
		return "type change"
	case GitStatusIgnored:
		return "ignored"
	case GitStatusConflicted:
		return "conflicted"
	default:
		return "unknown"
	}
}

// Git is a file's complete Git status. A file can be changed, staged, and then
// changed again, so both sides are tracked. The zero value has both sides set
// to GitStatusNotModified.
type Git struct {
	// Staged is the status of the file in the index.
	Staged GitStatus
	// Unstaged is the status of the file in the working tree.
	Unstaged GitStatus
}

// DefaultGit returns the status of a file with nothing done to it.
func DefaultGit() Git {
	return Git{
		Staged:   GitStatusNotModified,
		Unstaged: GitStatusNotModified,
	}
}
