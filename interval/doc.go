// Package interval provides the half-open integer range used throughout
// almanac, together with a handful of helpers over interval sets.
//
// What:
//
//   - Interval is the value type [Start, End): Start inclusive, End exclusive.
//   - Overlaps / Intersect use strict half-open semantics; a zero-length
//     overlap is not an overlap.
//   - Shift moves an interval by a signed delta.
//   - Min, Total, Sort and Merge operate on []Interval.
//
// Why:
//
//   - Remapping stages split and shift ranges of values without ever
//     enumerating the values themselves.
//
// Complexity:
//
//   - Interval methods: O(1).
//   - Min, Total:       O(n).
//   - Sort, Merge:      O(n log n), Memory: O(n).
//
// Intervals are never mutated in place; every operation returns a new value.
package interval
