package remap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// benchInput returns 100 random intervals and a seven-stage pipeline of 20
// rules per stage over [0, 1e9).
func benchInput() ([]interval.Interval, remap.Pipeline) {
	r := rand.New(rand.NewSource(42))
	in := make([]interval.Interval, 100)
	for i := range in {
		in[i] = interval.New(r.Int63n(1_000_000_000), r.Int63n(50_000_000))
	}
	stages := make([]remap.Stage, 7)
	for i := range stages {
		stages[i] = randomStage(r, 20, 1_000_000_000)
	}
	return in, remap.Pipeline{Stages: stages}
}

// BenchmarkApplyPipeline_Serial measures the default serial path.
func BenchmarkApplyPipeline_Serial(b *testing.B) {
	in, p := benchInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = remap.ApplyPipeline(in, p)
	}
}

// BenchmarkApplyPipeline_Merge measures serial execution with merging
// between stages, which bounds fragment growth.
func BenchmarkApplyPipeline_Merge(b *testing.B) {
	in, p := benchInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = remap.ApplyPipeline(in, p, remap.WithMerge())
	}
}

// BenchmarkApplyPipeline_Parallel measures fan-out over 8 workers.
func BenchmarkApplyPipeline_Parallel(b *testing.B) {
	in, p := benchInput()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = remap.ApplyPipeline(in, p, remap.WithParallelism(8))
	}
}
