package interval

import (
	"fmt"
	"math"
)

// Interval represents the half-open integer range [Start, End).
// An Interval with Start >= End is empty.
type Interval struct {
	Start int64 // inclusive lower bound
	End   int64 // exclusive upper bound
}

// New returns the interval [start, start+length).
// A non-positive length yields an empty interval.
func New(start, length int64) Interval {
	return Interval{Start: start, End: start + length}
}

// Fits reports whether [start, start+length) is representable: length is
// non-negative and start+length does not overflow int64.
func Fits(start, length int64) bool {
	return length >= 0 && start <= math.MaxInt64-length
}

// Single returns the one-value interval [v, v+1).
func Single(v int64) Interval {
	return Interval{Start: v, End: v + 1}
}

// String formats the interval as "[Start,End)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}
