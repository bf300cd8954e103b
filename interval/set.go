package interval

import (
	"cmp"
	"slices"

	"github.com/b97tsk/rangeset"
)

// Min returns the smallest Start among the non-empty intervals of xs.
// ok is false when xs holds no non-empty interval.
// Complexity: O(n).
func Min(xs []Interval) (v int64, ok bool) {
	for _, iv := range xs {
		if iv.Empty() {
			continue
		}
		if !ok || iv.Start < v {
			v, ok = iv.Start, true
		}
	}
	return v, ok
}

// Total returns the sum of lengths of xs. Overlapping members are counted
// once per occurrence; call Merge first for the size of the covered set.
func Total(xs []Interval) int64 {
	var n int64
	for _, iv := range xs {
		n += iv.Len()
	}
	return n
}

// Sort orders xs in place by Start, then End.
// Complexity: O(n log n).
func Sort(xs []Interval) {
	slices.SortFunc(xs, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
}

// Merge normalises xs into a sorted set of disjoint, non-adjacent, non-empty
// intervals covering exactly the same values. xs is left untouched.
// Complexity: O(n log n), Memory: O(n).
func Merge(xs []Interval) []Interval {
	var set rangeset.RangeSet[int64]
	for _, iv := range xs {
		if iv.Empty() {
			continue
		}
		set.AddRange(iv.Start, iv.End)
	}
	out := make([]Interval, 0, len(set))
	for _, r := range set {
		out = append(out, Interval{Start: r.Low, End: r.High})
	}
	return out
}
