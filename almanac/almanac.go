package almanac

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// Default categories the puzzle asks about.
const (
	DefaultFrom = "seed"
	DefaultTo   = "location"
)

// Almanac is the parsed puzzle input: raw seed numbers plus every map, in
// file order. It is not modified after parsing.
type Almanac struct {
	Seeds  []int64
	Stages []remap.Stage
}

// SeedValues returns every seed number as a one-value interval.
func (a *Almanac) SeedValues() []interval.Interval {
	out := make([]interval.Interval, len(a.Seeds))
	for i, s := range a.Seeds {
		out[i] = interval.Single(s)
	}
	return out
}

// SeedRanges reads the seed numbers as (start, length) pairs.
// Returns ErrOddSeedRanges when the count is odd and ErrBadSeedRange when a
// pair has a negative length or ends beyond int64.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: have %d", ErrOddSeedRanges, len(a.Seeds))
	}
	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if !interval.Fits(start, length) {
			return nil, fmt.Errorf("%w: start %d length %d", ErrBadSeedRange, start, length)
		}
		out = append(out, interval.New(start, length))
	}
	return out, nil
}

// Stage returns the map named from-to-to.
func (a *Almanac) Stage(from, to string) (remap.Stage, bool) {
	for _, s := range a.Stages {
		if s.From == from && s.To == to {
			return s, true
		}
	}
	return remap.Stage{}, false
}

// Categories returns every category name in order of first appearance.
func (a *Almanac) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range a.Stages {
		for _, c := range []string{s.From, s.To} {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// Pipeline links maps by category from `from` to `to`. from == to yields the
// empty (identity) pipeline.
//
// Errors: ErrNoChain when a category on the way has no outgoing map,
// ErrAmbiguousChain when it has several, ErrCycle when the chain revisits a
// category before reaching `to`.
func (a *Almanac) Pipeline(from, to string) (remap.Pipeline, error) {
	next := make(map[string][]int, len(a.Stages))
	for i, s := range a.Stages {
		next[s.From] = append(next[s.From], i)
	}

	seen := map[string]bool{from: true}
	var chain []remap.Stage
	for cat := from; cat != to; {
		out := next[cat]
		switch len(out) {
		case 0:
			return remap.Pipeline{}, fmt.Errorf("%w: %q", ErrNoChain, cat)
		case 1:
		default:
			return remap.Pipeline{}, fmt.Errorf("%w: %q (%d maps)", ErrAmbiguousChain, cat, len(out))
		}
		st := a.Stages[out[0]]
		if seen[st.To] {
			return remap.Pipeline{}, fmt.Errorf("%w: %q reached twice", ErrCycle, st.To)
		}
		seen[st.To] = true
		chain = append(chain, st)
		cat = st.To
	}

	return remap.NewPipeline(chain...)
}

// LowestValue maps each seed value through p one at a time and returns the
// smallest result.
func LowestValue(seeds []int64, p remap.Pipeline) (int64, error) {
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}
	low := p.Map(seeds[0])
	for _, s := range seeds[1:] {
		low = min(low, p.Map(s))
	}
	return low, nil
}

// LowestRange pushes the seed intervals through p and returns the smallest
// value of the result.
func LowestRange(seeds []interval.Interval, p remap.Pipeline, opts ...remap.Option) (int64, error) {
	out, err := remap.ApplyPipeline(seeds, p, opts...)
	if err != nil {
		return 0, err
	}
	low, ok := interval.Min(out)
	if !ok {
		return 0, ErrNoSeeds
	}
	return low, nil
}
