package main

import (
	"github.com/mutagen-io/lsfields/pkg/render"
)

// newAccountDatabase returns nil, since Windows identities are resolved from
// each entry's security descriptor rather than from numeric identifiers.
func newAccountDatabase(_ int) render.AccountDatabase {
	return nil
}
