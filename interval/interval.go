package interval

// Len returns the number of values in iv, or 0 when iv is empty.
// Complexity: O(1).
func (iv Interval) Len() int64 {
	if iv.End <= iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

// Empty reports whether iv contains no values.
func (iv Interval) Empty() bool {
	return iv.Start >= iv.End
}

// Contains reports whether v lies in [Start, End).
func (iv Interval) Contains(v int64) bool {
	return iv.Start <= v && v < iv.End
}

// Overlaps reports whether iv and o share at least one value:
// max(iv.Start, o.Start) < min(iv.End, o.End).
func (iv Interval) Overlaps(o Interval) bool {
	return max(iv.Start, o.Start) < min(iv.End, o.End)
}

// Intersect returns the common part of iv and o. If they do not overlap the
// result is empty, with unspecified bounds.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{Start: max(iv.Start, o.Start), End: min(iv.End, o.End)}
}

// Shift returns iv moved by delta.
func (iv Interval) Shift(delta int64) Interval {
	return Interval{Start: iv.Start + delta, End: iv.End + delta}
}

// Below returns the part of iv strictly below v, i.e. [iv.Start, min(iv.End, v)).
func (iv Interval) Below(v int64) Interval {
	return Interval{Start: iv.Start, End: min(iv.End, v)}
}

// Above returns the part of iv at or above v, i.e. [max(iv.Start, v), iv.End).
func (iv Interval) Above(v int64) Interval {
	return Interval{Start: max(iv.Start, v), End: iv.End}
}
