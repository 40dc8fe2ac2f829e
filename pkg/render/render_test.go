package render

import (
	"github.com/fatih/color"
)

func init() {
	// Keep escape sequences out of rendered strings so that they can be
	// compared directly.
	color.NoColor = true
}
