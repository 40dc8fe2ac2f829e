package fields

import (
	"time"
)

// Time is one of an entry's timestamps (modified, accessed, changed, or
// created). The nanosecond component is stored as reported by the source and
// isn't normalized, so it may exceed one second's worth of nanoseconds.
type Time struct {
	// Seconds is the number of seconds since the Unix epoch.
	Seconds int64
	// Nanoseconds is the sub-second component of the timestamp.
	Nanoseconds int64
}

// TimeFromStd converts a standard library time value.
func TimeFromStd(t time.Time) Time {
	return Time{
		Seconds:     t.Unix(),
		Nanoseconds: int64(t.Nanosecond()),
	}
}

// Std converts the timestamp to a standard library time value. Any excess
// nanoseconds are carried into seconds by the conversion.
func (t Time) Std() time.Time {
	return time.Unix(t.Seconds, t.Nanoseconds)
}

// Compare returns -1, 0, or 1 depending on whether t sorts before, equal to, or
// after other. Timestamps are ordered by seconds and then by nanoseconds.
func (t Time) Compare(other Time) int {
	switch {
	case t.Seconds < other.Seconds:
		return -1
	case t.Seconds > other.Seconds:
		return 1
	case t.Nanoseconds < other.Nanoseconds:
		return -1
	case t.Nanoseconds > other.Nanoseconds:
		return 1
	default:
		return 0
	}
}

// Before returns whether or not t sorts strictly before other.
func (t Time) Before(other Time) bool {
	return t.Compare(other) < 0
}
