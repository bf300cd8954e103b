package remap

import (
	"context"
	"errors"
)

var (
	// ErrBadParallelism indicates WithParallelism was given n < 1.
	ErrBadParallelism = errors.New("remap: parallelism must be at least 1")

	// ErrNilContext indicates WithContext was given a nil context.
	ErrNilContext = errors.New("remap: context is nil")
)

// Options configures ApplyPipeline.
//
// Ctx         – cancellation; checked before every stage. Default context.Background().
// Merge       – normalise the interval set after each stage. Default false.
// Parallelism – number of input intervals processed concurrently. Default 1.
// Direction   – Forward (default) or Reverse.
type Options struct {
	Ctx         context.Context
	Merge       bool
	Parallelism int
	Direction   Direction
}

// Option represents a functional option for ApplyPipeline.
type Option func(*Options)

// DefaultOptions returns serial, forward, unmerged options with a
// background context.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Merge:       false,
		Parallelism: 1,
		Direction:   Forward,
	}
}

// WithContext sets the context used for cancellation.
// Panics with ErrNilContext if ctx is nil.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			panic(ErrNilContext.Error())
		}
		o.Ctx = ctx
	}
}

// WithMerge normalises the set after every stage with interval.Merge.
// The covered values are unchanged; only the fragment count shrinks.
func WithMerge() Option {
	return func(o *Options) {
		o.Merge = true
	}
}

// WithParallelism processes up to n input intervals concurrently. Each
// input interval's chain is independent of every other, so results equal
// those of serial execution, concatenated in input order.
// Panics with ErrBadParallelism if n < 1.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadParallelism.Error())
		}
		o.Parallelism = n
	}
}

// WithDirection selects Forward or Reverse traversal of the pipeline.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}
