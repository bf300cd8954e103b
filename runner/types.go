package runner

import (
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNilSolver is returned by Run when no solver is given.
	ErrNilSolver = errors.New("runner: solver is nil")

	// ErrNilInput is returned by Run when no input reader is given.
	ErrNilInput = errors.New("runner: input is nil")
)

// Phase names used as Stopwatch buckets.
const (
	PhaseParse = "parse"
	PhasePart1 = "part1"
	PhasePart2 = "part2"
)

// Solver is a single day's puzzle. Parse is called once, before either part.
type Solver interface {
	// Name returns the puzzle's year and day.
	Name() (year, day int)
	// Parse reads the puzzle input into the solver's model.
	Parse(r io.Reader) error
	// Part1 computes the first answer from the parsed model.
	Part1() (int64, error)
	// Part2 computes the second answer from the parsed model.
	Part2() (int64, error)
}

// Report holds the outcome of one Run.
type Report struct {
	Year, Day    int
	Part1, Part2 int64
	Timings      map[string]time.Duration // keyed by Phase*
}

// Options configures Run.
type Options struct {
	Logger zerolog.Logger
}

// Option represents a functional option for Run.
type Option func(*Options)

// DefaultOptions returns options with a disabled logger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger sets the logger used for debug timings and failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

