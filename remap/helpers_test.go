package remap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// exampleTables holds the published seven-map almanac example as
// "dest source length" triples, in chain order.
var exampleTables = []struct {
	from, to string
	rules    [][3]int64
}{
	{"seed", "soil", [][3]int64{{50, 98, 2}, {52, 50, 48}}},
	{"soil", "fertilizer", [][3]int64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer", "water", [][3]int64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water", "light", [][3]int64{{88, 18, 7}, {18, 25, 70}}},
	{"light", "temperature", [][3]int64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature", "humidity", [][3]int64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity", "location", [][3]int64{{60, 56, 37}, {56, 93, 4}}},
}

// examplePipeline builds the seed→location pipeline from exampleTables.
func examplePipeline(t testing.TB) remap.Pipeline {
	t.Helper()
	stages := make([]remap.Stage, 0, len(exampleTables))
	for _, tbl := range exampleTables {
		rules := make([]remap.Rule, 0, len(tbl.rules))
		for _, r := range tbl.rules {
			rules = append(rules, remap.NewRule(r[0], r[1], r[2]))
		}
		st, err := remap.NewStage(tbl.from, tbl.to, rules...)
		require.NoError(t, err)
		stages = append(stages, st)
	}
	p, err := remap.NewPipeline(stages...)
	require.NoError(t, err)

	return p
}

// randomStage returns a stage of n rules with sources in [0,span), lengths in
// [0,span/4] and deltas in [-span,span]. Rules may overlap.
func randomStage(r *rand.Rand, n int, span int64) remap.Stage {
	rules := make([]remap.Rule, n)
	for i := range rules {
		rules[i] = remap.Rule{
			Source: r.Int63n(span),
			Length: r.Int63n(span/4 + 1),
			Delta:  r.Int63n(2*span+1) - span,
		}
	}
	return remap.Stage{Rules: rules}
}

// imageCounts returns, for every value of iv, how many times its image under
// stage occurs, computed value by value with Stage.Map.
func imageCounts(iv interval.Interval, stage remap.Stage) map[int64]int {
	counts := make(map[int64]int)
	for v := iv.Start; v < iv.End; v++ {
		counts[stage.Map(v)]++
	}
	return counts
}

// coverCounts returns how many output intervals cover each value.
func coverCounts(xs []interval.Interval) map[int64]int {
	counts := make(map[int64]int)
	for _, iv := range xs {
		for v := iv.Start; v < iv.End; v++ {
			counts[v]++
		}
	}
	return counts
}
