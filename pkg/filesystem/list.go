package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// List returns the entry at the specified path. If the path is a directory
// (and not a symbolic link to one), then the entries it contains are returned
// instead, sorted by name. Entries that disappear while the directory is being
// read are skipped.
func List(path string) ([]*Entry, error) {
	// Query the path itself without following symbolic links.
	info, err := os.Lstat(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to query path metadata")
	}
	if !info.IsDir() {
		return []*Entry{NewEntry(path, info)}, nil
	}

	// Read the directory contents. These are returned in name order.
	contents, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read directory contents")
	}

	// Compute entries.
	entries := make([]*Entry, 0, len(contents))
	for _, c := range contents {
		info, err := c.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "unable to query metadata for %s", c.Name())
		}
		entries = append(entries, NewEntry(filepath.Join(path, c.Name()), info))
	}

	// Success.
	return entries, nil
}
