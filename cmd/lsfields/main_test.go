package main

import (
	"github.com/fatih/color"
)

func init() {
	// Keep escape sequences out of rendered output so that it can be compared
	// directly.
	color.NoColor = true
}
