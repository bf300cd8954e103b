package remap

import (
	"github.com/katalvlaran/rangemap/interval"
)

// NewStage validates rules and returns a stage owning a private copy of them.
func NewStage(from, to string, rules ...Rule) (Stage, error) {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return Stage{}, err
		}
	}
	return Stage{From: from, To: to, Rules: append([]Rule(nil), rules...)}, nil
}

// Name returns the stage name in almanac form, e.g. "seed-to-soil".
func (s Stage) Name() string {
	return s.From + "-to-" + s.To
}

// Inverse returns the stage running To→From, each rule inverted.
// Rule order, and therefore first-match priority, is preserved.
func (s Stage) Inverse() Stage {
	rules := make([]Rule, len(s.Rules))
	for i, r := range s.Rules {
		rules[i] = r.Inverse()
	}
	return Stage{From: s.To, To: s.From, Rules: rules}
}

// Map returns the image of v under the first rule covering it, or v itself.
// Complexity: O(R).
func (s Stage) Map(v int64) int64 {
	for _, r := range s.Rules {
		if out, ok := r.Apply(v); ok {
			return out
		}
	}
	return v
}

// Unmap returns v-Delta for the first rule whose image covers v, or v itself.
// Complexity: O(R).
func (s Stage) Unmap(v int64) int64 {
	for _, r := range s.Rules {
		if r.Image().Contains(v) {
			return v - r.Delta
		}
	}
	return v
}

// ApplyStage maps every interval of in through stage and returns the
// resulting intervals in no particular order.
//
// Each fragment is compared against the rules in order. The first rule with a
// non-empty overlap claims that overlap, which is emitted shifted by the
// rule's delta; the parts of the fragment below and above the overlap go back
// on the work-list to be tried against the remaining rules. A fragment no
// rule overlaps is emitted unchanged. For every input interval the pre-images
// of its outputs partition it exactly. Empty inputs are dropped.
//
// Complexity: O(F×R), Memory: O(F), with F the number of fragments.
func ApplyStage(in []interval.Interval, stage Stage) []interval.Interval {
	out := make([]interval.Interval, 0, len(in))
	work := make([]workItem, 0, len(in))
	for i := len(in) - 1; i >= 0; i-- {
		if !in[i].Empty() {
			work = append(work, workItem{iv: in[i]})
		}
	}

	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]

		matched := false
		for i := item.next; i < len(stage.Rules); i++ {
			r := stage.Rules[i]
			src := r.Range()
			if !item.iv.Overlaps(src) {
				continue
			}
			out = append(out, item.iv.Intersect(src).Shift(r.Delta))
			// Earlier rules missed the whole fragment, so they miss its parts too.
			if below := item.iv.Below(src.Start); !below.Empty() {
				work = append(work, workItem{iv: below, next: i + 1})
			}
			if above := item.iv.Above(src.End); !above.Empty() {
				work = append(work, workItem{iv: above, next: i + 1})
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, item.iv)
		}
	}

	return out
}
