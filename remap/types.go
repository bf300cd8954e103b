package remap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

var (
	// ErrNegativeLength indicates a rule whose source range has Length < 0.
	ErrNegativeLength = errors.New("remap: rule length must be non-negative")

	// ErrRangeOverflow indicates a rule whose source or destination range
	// does not fit in int64.
	ErrRangeOverflow = errors.New("remap: rule range overflows int64")

	// ErrStageChain indicates adjacent pipeline stages whose categories do not
	// meet (stage[i].To != stage[i+1].From).
	ErrStageChain = errors.New("remap: stage categories do not chain")
)

// Direction selects whether values flow source→destination (Forward) or
// destination→source (Reverse).
type Direction int

const (
	// Forward maps v to v+Delta.
	Forward Direction = iota
	// Reverse maps v to v-Delta, matching on each rule's image.
	Reverse
)

// String returns "forward" or "reverse".
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Rule is a single remapping fact: every value in [Source, Source+Length)
// maps to value+Delta. Rules are leaf values and never mutated.
type Rule struct {
	Source int64 // first value covered
	Length int64 // number of values covered
	Delta  int64 // destination start minus source start
}

// Stage is one named transformation layer, e.g. "seed-to-soil".
// Rules are matched in order; the first overlapping rule wins.
type Stage struct {
	From  string
	To    string
	Rules []Rule
}

// Pipeline is an ordered sequence of stages applied in series.
type Pipeline struct {
	Stages []Stage
}

// String formats the rule as "[src,end)+delta".
func (r Rule) String() string {
	return fmt.Sprintf("%s%+d", r.Range(), r.Delta)
}

// workItem is a fragment awaiting matching, together with the index of the
// first rule it has not yet been compared against.
type workItem struct {
	iv   interval.Interval
	next int
}
