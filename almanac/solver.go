package almanac

import (
	"io"

	"github.com/katalvlaran/rangemap/remap"
	"github.com/katalvlaran/rangemap/runner"
)

// Format selects how Solver.Parse decodes its input.
type Format int

const (
	// FormatText is the puzzle's own text layout.
	FormatText Format = iota
	// FormatYAML is the YAML document read by DecodeYAML.
	FormatYAML
)

// Puzzle identity reported by Solver.Name.
const (
	Year = 2023
	Day  = 5
)

// Solver answers the almanac puzzle; it satisfies runner.Solver.
type Solver struct {
	from, to string
	format   Format
	opts     []remap.Option

	almanac  *Almanac
	pipeline remap.Pipeline
}

var _ runner.Solver = (*Solver)(nil)

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithCategories sets the categories the answers travel between.
// Default DefaultFrom → DefaultTo.
func WithCategories(from, to string) SolverOption {
	return func(s *Solver) {
		s.from, s.to = from, to
	}
}

// WithFormat sets the input format. Default FormatText.
func WithFormat(f Format) SolverOption {
	return func(s *Solver) {
		s.format = f
	}
}

// WithRemapOptions passes options through to remap.ApplyPipeline for part 2.
func WithRemapOptions(opts ...remap.Option) SolverOption {
	return func(s *Solver) {
		s.opts = append(s.opts, opts...)
	}
}

// NewSolver returns a Solver for seed → location over puzzle text unless
// configured otherwise.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{from: DefaultFrom, to: DefaultTo, format: FormatText}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name reports the puzzle's year and day.
func (s *Solver) Name() (int, int) { return Year, Day }

// Parse decodes the almanac and links its pipeline.
func (s *Solver) Parse(r io.Reader) error {
	var (
		a   *Almanac
		err error
	)
	if s.format == FormatYAML {
		a, err = DecodeYAML(r)
	} else {
		a, err = Parse(r)
	}
	if err != nil {
		return err
	}
	return s.Load(a)
}

// Load uses an already decoded almanac.
func (s *Solver) Load(a *Almanac) error {
	p, err := a.Pipeline(s.from, s.to)
	if err != nil {
		return err
	}
	s.almanac, s.pipeline = a, p
	return nil
}

// Almanac returns the parsed almanac, or nil before Parse.
func (s *Solver) Almanac() *Almanac { return s.almanac }

// Pipeline returns the linked pipeline.
func (s *Solver) Pipeline() remap.Pipeline { return s.pipeline }

// Part1 returns the lowest target value over the individual seed numbers.
func (s *Solver) Part1() (int64, error) {
	if s.almanac == nil {
		return 0, ErrNotParsed
	}
	return LowestValue(s.almanac.Seeds, s.pipeline)
}

// Part2 returns the lowest target value over the seed ranges.
func (s *Solver) Part2() (int64, error) {
	if s.almanac == nil {
		return 0, ErrNotParsed
	}
	seeds, err := s.almanac.SeedRanges()
	if err != nil {
		return 0, err
	}
	return LowestRange(seeds, s.pipeline, s.opts...)
}
