package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which are considered to be requesting
// termination. SIGINT is the only POSIX signal supported by Go on Windows,
// where it's emulated on Ctrl-C and Ctrl-Break in console environments.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
}
