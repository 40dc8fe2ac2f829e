package configuration

import (
	"fmt"
)

// TimeField selects which timestamp is displayed.
type TimeField uint8

const (
	// TimeFieldModified selects the modification time.
	TimeFieldModified TimeField = iota
	// TimeFieldAccessed selects the access time.
	TimeFieldAccessed
	// TimeFieldChanged selects the status change time.
	TimeFieldChanged
	// TimeFieldCreated selects the creation time.
	TimeFieldCreated
)

// NameToTimeField converts a name to a TimeField. It returns false if the name
// is invalid.
func NameToTimeField(name string) (TimeField, bool) {
	switch name {
	case "modified":
		return TimeFieldModified, true
	case "accessed":
		return TimeFieldAccessed, true
	case "changed":
		return TimeFieldChanged, true
	case "created":
		return TimeFieldCreated, true
	default:
		return TimeFieldModified, false
	}
}

// String provides a human-readable representation of a time field.
func (f TimeField) String() string {
	switch f {
	case TimeFieldModified:
		return "modified"
	case TimeFieldAccessed:
		return "accessed"
	case TimeFieldChanged:
		return "changed"
	case TimeFieldCreated:
		return "created"
	default:
		return "unknown"
	}
}

// UnmarshalText implements the text unmarshalling interface used when loading
// from YAML files.
func (f *TimeField) UnmarshalText(textBytes []byte) error {
	text := string(textBytes)
	if field, ok := NameToTimeField(text); !ok {
		return fmt.Errorf("invalid time field: %s", text)
	} else {
		*f = field
	}
	return nil
}

// ColorMode controls whether or not output is styled.
type ColorMode uint8

const (
	// ColorModeAuto styles output only when it's written to a terminal.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways always styles output.
	ColorModeAlways
	// ColorModeNever never styles output.
	ColorModeNever
)

// NameToColorMode converts a name to a ColorMode. It returns false if the name
// is invalid.
func NameToColorMode(name string) (ColorMode, bool) {
	switch name {
	case "auto":
		return ColorModeAuto, true
	case "always":
		return ColorModeAlways, true
	case "never":
		return ColorModeNever, true
	default:
		return ColorModeAuto, false
	}
}

// String provides a human-readable representation of a color mode.
func (m ColorMode) String() string {
	switch m {
	case ColorModeAuto:
		return "auto"
	case ColorModeAlways:
		return "always"
	case ColorModeNever:
		return "never"
	default:
		return "unknown"
	}
}

// UnmarshalText implements the text unmarshalling interface used when loading
// from YAML files.
func (m *ColorMode) UnmarshalText(textBytes []byte) error {
	text := string(textBytes)
	if mode, ok := NameToColorMode(text); !ok {
		return fmt.Errorf("invalid color mode: %s", text)
	} else {
		*m = mode
	}
	return nil
}
