package remap_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

func TestNewPipeline_Chain(t *testing.T) {
	a := remap.Stage{From: "seed", To: "soil"}
	b := remap.Stage{From: "soil", To: "water"}
	c := remap.Stage{From: "light", To: "location"}

	p, err := remap.NewPipeline(a, b)
	require.NoError(t, err)
	assert.Equal(t, "seed", p.Source())
	assert.Equal(t, "water", p.Target())

	_, err = remap.NewPipeline(a, c)
	assert.ErrorIs(t, err, remap.ErrStageChain)

	// Unnamed stages chain with anything.
	_, err = remap.NewPipeline(a, remap.Stage{}, c)
	assert.NoError(t, err)

	var empty remap.Pipeline
	assert.Equal(t, "", empty.Source())
	assert.Equal(t, "", empty.Target())
}

func TestPipeline_MapTraceUnmap(t *testing.T) {
	p := examplePipeline(t)

	want := map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, loc := range want {
		assert.Equal(t, loc, p.Map(seed), "Map(%d)", seed)
		assert.Equal(t, seed, p.Unmap(loc), "Unmap(%d)", loc)
	}

	assert.Equal(t, []int64{79, 81, 81, 81, 74, 78, 78, 82}, p.Trace(79))
}

func TestPipeline_Inverse(t *testing.T) {
	p := examplePipeline(t)
	inv := p.Inverse()
	assert.Equal(t, "location", inv.Source())
	assert.Equal(t, "seed", inv.Target())
	assert.Equal(t, int64(82), inv.Map(46))
}

// TestApplyPipeline_Example runs the published example: seeds 79..92 reach a
// lowest location of 46, and both seed ranges together do too.
func TestApplyPipeline_Example(t *testing.T) {
	p := examplePipeline(t)

	out, err := remap.ApplyPipeline([]interval.Interval{interval.New(79, 14)}, p)
	require.NoError(t, err)
	low, ok := interval.Min(out)
	require.True(t, ok)
	assert.Equal(t, int64(46), low)
	assert.Equal(t, int64(14), interval.Total(out))

	out, err = remap.ApplyPipeline([]interval.Interval{interval.New(79, 14), interval.New(55, 13)}, p)
	require.NoError(t, err)
	low, _ = interval.Min(out)
	assert.Equal(t, int64(46), low)
	assert.Equal(t, int64(27), interval.Total(out))
}

// TestApplyPipeline_EqualsRepeatedApplyStage checks composition: applying a
// two-stage pipeline equals calling ApplyStage twice.
func TestApplyPipeline_EqualsRepeatedApplyStage(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		s1 := randomStage(r, 1+r.Intn(5), 1000)
		s2 := randomStage(r, 1+r.Intn(5), 1000)
		in := []interval.Interval{
			interval.New(r.Int63n(1000), r.Int63n(300)),
			interval.New(r.Int63n(1000), r.Int63n(300)),
		}

		got, err := remap.ApplyPipeline(in, remap.Pipeline{Stages: []remap.Stage{s1, s2}})
		require.NoError(t, err)
		want := remap.ApplyStage(remap.ApplyStage(in, s1), s2)
		require.Equal(t, want, got, "trial %d", trial)
	}
}

func TestApplyPipeline_EmptyPipeline(t *testing.T) {
	in := []interval.Interval{{Start: 1, End: 4}}
	out, err := remap.ApplyPipeline(in, remap.Pipeline{})
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out[0].Start = 99
	assert.Equal(t, int64(1), in[0].Start, "output must not alias input")
}

func TestApplyPipeline_ParallelMatchesSerial(t *testing.T) {
	p := examplePipeline(t)
	r := rand.New(rand.NewSource(3))
	in := make([]interval.Interval, 64)
	for i := range in {
		in[i] = interval.New(r.Int63n(100), r.Int63n(20)+1)
	}

	serial, err := remap.ApplyPipeline(in, p)
	require.NoError(t, err)
	parallel, err := remap.ApplyPipeline(in, p, remap.WithParallelism(8))
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)
}

func TestApplyPipeline_MergePreservesCoverage(t *testing.T) {
	p := examplePipeline(t)
	in := []interval.Interval{interval.New(79, 14), interval.New(55, 13), interval.New(0, 100)}

	plain, err := remap.ApplyPipeline(in, p)
	require.NoError(t, err)
	merged, err := remap.ApplyPipeline(in, p, remap.WithMerge())
	require.NoError(t, err)

	assert.Equal(t, interval.Merge(plain), merged)
	assert.LessOrEqual(t, len(merged), len(plain))

	parallel, err := remap.ApplyPipeline(in, p, remap.WithMerge(), remap.WithParallelism(3))
	require.NoError(t, err)
	assert.Equal(t, merged, parallel)
}

func TestApplyPipeline_Reverse(t *testing.T) {
	p := examplePipeline(t)

	out, err := remap.ApplyPipeline([]interval.Interval{interval.Single(46)}, p, remap.WithDirection(remap.Reverse))
	require.NoError(t, err)
	assert.Equal(t, []interval.Interval{interval.Single(82)}, out)
	assert.Equal(t, "reverse", remap.Reverse.String())
	assert.Equal(t, "forward", remap.Forward.String())
}

func TestApplyPipeline_Cancelled(t *testing.T) {
	p := examplePipeline(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := []interval.Interval{interval.New(79, 14), interval.New(55, 13)}
	_, err := remap.ApplyPipeline(in, p, remap.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = remap.ApplyPipeline(in, p, remap.WithContext(ctx), remap.WithParallelism(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApplyPipeline_OptionPanics(t *testing.T) {
	p := examplePipeline(t)
	assert.Panics(t, func() { _, _ = remap.ApplyPipeline(nil, p, remap.WithParallelism(0)) })
	//nolint:staticcheck // nil context is the case under test
	assert.Panics(t, func() { _, _ = remap.ApplyPipeline(nil, p, remap.WithContext(nil)) })
}
