// Package must provides helpers for operations whose failures can only be
// logged.
package must

import (
	"io"

	"github.com/pkg/errors"

	"github.com/mutagen-io/lsfields/pkg/logging"
)

// Close closes a resource, logging any failure as a warning.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn(errors.Wrap(err, "unable to close"))
	}
}
