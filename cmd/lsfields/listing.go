package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/mutagen-io/lsfields/pkg/configuration"
	"github.com/mutagen-io/lsfields/pkg/fields"
	"github.com/mutagen-io/lsfields/pkg/filesystem"
	"github.com/mutagen-io/lsfields/pkg/logging"
	"github.com/mutagen-io/lsfields/pkg/render"
)

// filterEntries removes hidden entries (unless all is set) and excluded
// entries.
func filterEntries(entries []*filesystem.Entry, config *configuration.Configuration, all bool) []*filesystem.Entry {
	filtered := entries[:0]
	for _, entry := range entries {
		if !all && filesystem.IsHidden(entry) {
			continue
		}
		if config.Excluded(entry.Name, entry.Path) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

// renderer renders entries into table rows.
type renderer struct {
	// theme is the style theme.
	theme *render.Theme
	// ownership renders owners and groups.
	ownership *render.Ownership
	// octal indicates whether or not to include an octal permissions column.
	octal bool
	// sizeFormat is the size format.
	sizeFormat render.SizeFormat
	// timeField is the timestamp to display.
	timeField configuration.TimeField
	// timeFormat is the timestamp format.
	timeFormat render.TimeFormat
	// logger is the renderer's logger.
	logger *logging.Logger
}

// newRenderer creates a renderer from a configuration.
func newRenderer(config *configuration.Configuration, octal bool, logger *logging.Logger) *renderer {
	// Compute the size format.
	sizeFormat := render.SizeFormatDecimal
	if config.Size.Bytes {
		sizeFormat = render.SizeFormatBytes
	} else if config.Size.Binary {
		sizeFormat = render.SizeFormatBinary
	}

	// Compute the user format.
	userFormat := render.UserFormatName
	if config.Users.Numeric {
		userFormat = render.UserFormatNumeric
	}

	// Compute the time format.
	timeFormat := render.TimeFormat{Layout: config.Time.Layout}
	if config.Time.UTC {
		timeFormat.Location = time.UTC
	}

	// Create the renderer.
	return &renderer{
		theme: render.DefaultTheme(),
		ownership: &render.Ownership{
			Format:   userFormat,
			Accounts: newAccountDatabase(config.Users.CacheSize),
			Logger:   logger.Sublogger("ownership"),
		},
		octal:      octal,
		sizeFormat: sizeFormat,
		timeField:  config.Time.Field,
		timeFormat: timeFormat,
		logger:     logger,
	}
}

// alignments returns the column alignments for rows produced by the renderer.
func (r *renderer) alignments() []alignment {
	var result []alignment
	if r.octal {
		result = append(result, alignLeft)
	}
	return append(result,
		alignLeft,  // permissions
		alignRight, // links
		alignRight, // inode
		alignRight, // blocks
		alignRight, // size
		alignLeft,  // user
		alignLeft,  // group
		alignLeft,  // time
		alignLeft,  // name
	)
}

// timestamp selects the configured timestamp.
func (r *renderer) timestamp(entry *filesystem.Entry) fields.Time {
	switch r.timeField {
	case configuration.TimeFieldAccessed:
		return entry.Accessed
	case configuration.TimeFieldChanged:
		return entry.Changed
	case configuration.TimeFieldCreated:
		return entry.Created
	default:
		return entry.Modified
	}
}

// name renders an entry's name, including the target of symbolic links.
func (r *renderer) name(entry *filesystem.Entry) render.TextCell {
	cell := render.Name(entry.Name, entry.Type, r.theme)
	if entry.Type == fields.TypeLink {
		if target, err := os.Readlink(entry.Path); err != nil {
			r.logger.Warn(errors.Wrapf(err, "unable to read symbolic link target for %s", entry.Path))
		} else {
			cell.Append(r.theme.Punctuation, " -> ")
			cell.Append(nil, target)
		}
	}
	return cell
}

// row renders an entry into a table row.
func (r *renderer) row(entry *filesystem.Entry) []render.TextCell {
	var cells []render.TextCell
	if r.octal {
		cells = append(cells, octal(entry, r.theme))
	}
	return append(cells,
		render.PermissionsPlus(entry.Permissions, r.theme),
		render.Links(entry.Links, r.theme),
		render.Inode(entry.Inode, r.theme),
		render.Blocks(entry.Blocks, r.theme),
		render.Size(entry.Size, r.sizeFormat, r.theme),
		r.ownership.User(entry.User, r.theme),
		r.ownership.Group(entry.Group, r.theme),
		render.Time(r.timestamp(entry), r.timeFormat, r.theme),
		r.name(entry),
	)
}

// rows renders entries concurrently, with at most parallelism entries being
// rendered at once. Each entry is rendered entirely within a single goroutine,
// so any per-entry resources acquired during rendering are never shared. Rows
// are returned in entry order.
func (r *renderer) rows(ctx context.Context, entries []*filesystem.Entry, parallelism int) ([][]render.TextCell, error) {
	rows := make([][]render.TextCell, len(entries))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)
	for i, entry := range entries {
		i, entry := i, entry
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = r.row(entry)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "rendering cancelled")
	}
	return rows, nil
}
