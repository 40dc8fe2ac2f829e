package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// errorPlaceholder is the text rendered in place of a value that couldn't be
// resolved.
const errorPlaceholder = "ERROR"

// Span is a run of text with a single style.
type Span struct {
	// Style is the style applied to Text. A nil style leaves it unstyled.
	Style *color.Color
	// Text is the unstyled text.
	Text string
}

// TextCell is a sequence of styled spans along with their combined display
// width.
type TextCell struct {
	// Spans are the cell's styled spans.
	Spans []Span
	// Width is the number of terminal columns that the cell occupies.
	Width int
}

// Paint creates a cell containing text rendered with the specified style.
func Paint(style *color.Color, text string) TextCell {
	return TextCell{
		Spans: []Span{{Style: style, Text: text}},
		Width: runewidth.StringWidth(text),
	}
}

// Append adds a span to the end of the cell.
func (c *TextCell) Append(style *color.Color, text string) {
	c.Spans = append(c.Spans, Span{Style: style, Text: text})
	c.Width += runewidth.StringWidth(text)
}

// Contents returns the cell's unstyled text.
func (c TextCell) Contents() string {
	if len(c.Spans) == 1 {
		return c.Spans[0].Text
	}
	var builder strings.Builder
	for _, s := range c.Spans {
		builder.WriteString(s.Text)
	}
	return builder.String()
}

// String returns the cell's text with styles applied.
func (c TextCell) String() string {
	var builder strings.Builder
	for _, s := range c.Spans {
		if s.Style == nil {
			builder.WriteString(s.Text)
		} else {
			builder.WriteString(s.Style.Sprint(s.Text))
		}
	}
	return builder.String()
}

// errorStyle is the style used for the error placeholder.
var errorStyle = color.New(color.FgRed, color.Bold)

// errorCell returns the placeholder cell rendered when a value can't be
// resolved.
func errorCell() TextCell {
	return Paint(errorStyle, errorPlaceholder)
}

// IsError returns whether or not the cell is the error placeholder.
func (c TextCell) IsError() bool {
	return len(c.Spans) == 1 &&
		c.Spans[0].Text == errorPlaceholder &&
		c.Spans[0].Style == errorStyle
}
