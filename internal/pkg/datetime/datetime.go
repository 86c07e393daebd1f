// Package datetime holds the wire codec for timestamps and the time range
// model shared by the booking and blocking engines.
package datetime

import (
	"errors"
	"strings"
	"time"
)

// Layout is the Go layout for the fixed wire format.
const Layout = "2006-01-02 15:04:05"

// WireFormat is the user-facing name of the format, used in error messages.
const WireFormat = "yyyy-MM-dd HH:mm:ss"

// ErrFormat reports a timestamp that does not match the wire format.
var ErrFormat = errors.New("invalid date format")

// Parse converts a wire timestamp into a naive local time value.
// Input is trimmed and must be exactly 19 characters: second precision,
// no timezone, no fractional seconds.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(Layout) {
		return time.Time{}, ErrFormat
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrFormat
	}
	return t, nil
}

// Format renders a time value in the wire format.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Range is a start/end pair at one-second resolution. A valid range has
// Start strictly before End.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange parses both endpoints from their wire form.
func NewRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, End: e}, nil
}

// Valid reports whether the range is chronological. Equal endpoints are
// rejected the same as a reversed pair.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two ranges collide: the generic interval test,
// plus an explicit equal-endpoints clause. The second clause is implied by
// the first but some call sites historically relied on equality-only
// matching, so both are kept.
func (r Range) Overlaps(other Range) bool {
	if r.Start.Before(other.End) && r.End.After(other.Start) {
		return true
	}
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}
