package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/mutagen-io/lsfields/pkg/render"
)

// alignment is a column alignment.
type alignment uint8

const (
	// alignLeft pads cells on the right.
	alignLeft alignment = iota
	// alignRight pads cells on the left.
	alignRight
)

// table is a set of rows printed in aligned columns.
type table struct {
	// alignments are the column alignments. Rows must have exactly this many
	// cells.
	alignments []alignment
	// rows are the table rows.
	rows [][]render.TextCell
}

// widths computes the display width of each column.
func (t *table) widths() []int {
	widths := make([]int, len(t.alignments))
	for _, row := range t.rows {
		for c, cell := range row {
			if cell.Width > widths[c] {
				widths[c] = cell.Width
			}
		}
	}
	return widths
}

// write prints the table. Columns are separated by a single space and the last
// column isn't padded.
func (t *table) write(writer io.Writer) error {
	widths := t.widths()
	buffered := bufio.NewWriter(writer)
	for _, row := range t.rows {
		for c, cell := range row {
			last := c == len(row)-1
			padding := strings.Repeat(" ", widths[c]-cell.Width)
			if t.alignments[c] == alignRight {
				buffered.WriteString(padding)
			}
			buffered.WriteString(cell.String())
			if !last {
				if t.alignments[c] == alignLeft {
					buffered.WriteString(padding)
				}
				buffered.WriteByte(' ')
			}
		}
		buffered.WriteByte('\n')
	}
	return buffered.Flush()
}
