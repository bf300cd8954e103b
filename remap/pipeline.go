package remap

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rangemap/interval"
)

// NewPipeline returns a pipeline over a private copy of stages.
// Adjacent stages must chain: stages[i].To == stages[i+1].From, unless either
// side is unnamed. Returns ErrStageChain otherwise.
func NewPipeline(stages ...Stage) (Pipeline, error) {
	for i := 1; i < len(stages); i++ {
		prev, cur := stages[i-1], stages[i]
		if prev.To != "" && cur.From != "" && prev.To != cur.From {
			return Pipeline{}, fmt.Errorf("%w: %q then %q", ErrStageChain, prev.Name(), cur.Name())
		}
	}
	return Pipeline{Stages: append([]Stage(nil), stages...)}, nil
}

// Source returns the category the pipeline starts from, or "" if empty.
func (p Pipeline) Source() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[0].From
}

// Target returns the category the pipeline ends in, or "" if empty.
func (p Pipeline) Target() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[len(p.Stages)-1].To
}

// Inverse returns the pipeline running Target→Source: stages in reverse
// order, each inverted.
func (p Pipeline) Inverse() Pipeline {
	stages := make([]Stage, len(p.Stages))
	for i, s := range p.Stages {
		stages[len(p.Stages)-1-i] = s.Inverse()
	}
	return Pipeline{Stages: stages}
}

// Map passes v through every stage in order.
func (p Pipeline) Map(v int64) int64 {
	for _, s := range p.Stages {
		v = s.Map(v)
	}
	return v
}

// Unmap passes v backwards through every stage, last to first.
func (p Pipeline) Unmap(v int64) int64 {
	for i := len(p.Stages) - 1; i >= 0; i-- {
		v = p.Stages[i].Unmap(v)
	}
	return v
}

// Trace returns v followed by its value after each stage, so
// Trace(v)[len(p.Stages)] == Map(v).
func (p Pipeline) Trace(v int64) []int64 {
	out := make([]int64, 0, len(p.Stages)+1)
	out = append(out, v)
	for _, s := range p.Stages {
		v = s.Map(v)
		out = append(out, v)
	}
	return out
}

// ApplyPipeline feeds in through every stage of p, each stage's output
// becoming the next stage's input, and returns the final set in no
// guaranteed order. Callers wanting the lowest value use interval.Min.
//
// The only error returned is the context's, when it is cancelled.
// Complexity: sum over stages of ApplyStage.
func ApplyPipeline(in []interval.Interval, p Pipeline, opts ...Option) ([]interval.Interval, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Direction == Reverse {
		p = p.Inverse()
	}

	if o.Parallelism <= 1 || len(in) <= 1 {
		return applyStages(o.Ctx, in, p.Stages, o.Merge)
	}

	results := make([][]interval.Interval, len(in))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Parallelism)
	for i, iv := range in {
		i, iv := i, iv
		g.Go(func() error {
			out, err := applyStages(ctx, []interval.Interval{iv}, p.Stages, o.Merge)
			results[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []interval.Interval
	for _, r := range results {
		out = append(out, r...)
	}
	if o.Merge {
		out = interval.Merge(out)
	}
	return out, nil
}

func applyStages(ctx context.Context, cur []interval.Interval, stages []Stage, merge bool) ([]interval.Interval, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(stages) == 0 {
		return slices.Clone(cur), nil
	}
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur = ApplyStage(cur, s)
		if merge {
			cur = interval.Merge(cur)
		}
	}
	return cur, nil
}
