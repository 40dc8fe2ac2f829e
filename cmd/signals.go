package cmd

import (
	"context"
	"os/signal"
)

// TerminationContext returns a context that is cancelled when one of the
// TerminationSignals is received. The returned function must be called to
// release signal handling resources.
func TerminationContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, TerminationSignals...)
}
