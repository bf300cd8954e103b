package remap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rangemap/interval"
)

// NewRule builds a rule from the almanac's "destination source length" triple.
func NewRule(dest, source, length int64) Rule {
	return Rule{Source: source, Length: length, Delta: dest - source}
}

// NewValidRule is NewRule followed by Validate. It also rejects a
// dest-source difference that does not fit in int64, which NewRule would
// silently wrap.
func NewValidRule(dest, source, length int64) (Rule, error) {
	if (source < 0 && dest > math.MaxInt64+source) || (source > 0 && dest < math.MinInt64+source) {
		return Rule{}, fmt.Errorf("%w: dest %d source %d", ErrRangeOverflow, dest, source)
	}
	r := NewRule(dest, source, length)
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Range returns the source interval [Source, Source+Length).
func (r Rule) Range() interval.Interval {
	return interval.New(r.Source, r.Length)
}

// Image returns the destination interval, Range shifted by Delta.
func (r Rule) Image() interval.Interval {
	return r.Range().Shift(r.Delta)
}

// Inverse returns the rule mapping Image back onto Range.
func (r Rule) Inverse() Rule {
	return Rule{Source: r.Source + r.Delta, Length: r.Length, Delta: -r.Delta}
}

// Validate reports ErrNegativeLength or ErrRangeOverflow for a malformed
// rule. A valid rule has both Range and Image inside int64, and an Inverse
// that is valid too.
func (r Rule) Validate() error {
	if r.Length < 0 {
		return fmt.Errorf("%w: source %d length %d", ErrNegativeLength, r.Source, r.Length)
	}
	if !interval.Fits(r.Source, r.Length) {
		return fmt.Errorf("%w: source %d length %d", ErrRangeOverflow, r.Source, r.Length)
	}
	if r.Delta == math.MinInt64 ||
		(r.Delta > 0 && r.Source > math.MaxInt64-r.Delta) ||
		(r.Delta < 0 && r.Source < math.MinInt64-r.Delta) ||
		!interval.Fits(r.Source+r.Delta, r.Length) {
		return fmt.Errorf("%w: destination of %d%+d length %d", ErrRangeOverflow, r.Source, r.Delta, r.Length)
	}
	return nil
}

// Apply returns v+Delta and true if r covers v, otherwise v and false.
func (r Rule) Apply(v int64) (int64, bool) {
	if r.Range().Contains(v) {
		return v + r.Delta, true
	}
	return v, false
}
