//go:build !windows

package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which are considered to be requesting
// termination.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
