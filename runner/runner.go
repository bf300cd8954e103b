package runner

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Run parses r with s, runs both parts, and writes the report to w.
// It stops at the first failing phase and returns that error wrapped with
// the phase name. The context is checked before each phase.
func Run(ctx context.Context, w io.Writer, s Solver, r io.Reader, opts ...Option) (Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s == nil {
		return Report{}, ErrNilSolver
	}
	if r == nil {
		return Report{}, ErrNilInput
	}

	year, day := s.Name()
	rep := Report{Year: year, Day: day}
	log := o.Logger.With().Int("year", year).Int("day", day).Logger()
	sw := NewStopwatch()

	fmt.Fprintf(w, "---- %d, Day %d ----\n", year, day)

	if err := ctx.Err(); err != nil {
		return rep, err
	}
	sw.Start(PhaseParse)
	err := s.Parse(r)
	d := sw.Stop(PhaseParse)
	if err != nil {
		log.Error().Err(err).Msg("parse failed")
		return rep, fmt.Errorf("%s: %w", PhaseParse, err)
	}
	log.Debug().Dur("elapsed", d).Msg(PhaseParse)
	fmt.Fprintf(w, "%s Parsing\n", FormatMillis(d))

	parts := []struct {
		phase string
		which int
		fn    func() (int64, error)
		dst   *int64
	}{
		{PhasePart1, 1, s.Part1, &rep.Part1},
		{PhasePart2, 2, s.Part2, &rep.Part2},
	}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			rep.Timings = sw.Snapshot()
			return rep, err
		}
		sw.Start(p.phase)
		v, err := p.fn()
		d := sw.Stop(p.phase)
		if err != nil {
			log.Error().Err(err).Str("phase", p.phase).Msg("part failed")
			rep.Timings = sw.Snapshot()
			return rep, fmt.Errorf("%s: %w", p.phase, err)
		}
		*p.dst = v
		log.Debug().Dur("elapsed", d).Int64("answer", v).Msg(p.phase)
		fmt.Fprintf(w, "%s Part %d: %d\n", FormatMicros(d), p.which, v)
	}

	rep.Timings = sw.Snapshot()
	total := sw.Elapsed(PhaseParse) + sw.Elapsed(PhasePart1) + sw.Elapsed(PhasePart2)
	log.Debug().Dur("total", total).Str("timings", sw.Results()).Msg("done")
	return rep, nil
}

// FormatMillis renders d as "SSS.mmm", seconds right-aligned to width 3.
func FormatMillis(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%3d.%03d", ms/1000, ms%1000)
}

// FormatMicros renders d as "SSS.mmm.uuu", seconds right-aligned to width 3.
func FormatMicros(d time.Duration) string {
	us := d.Microseconds()
	return fmt.Sprintf("%3d.%03d.%03d", us/1_000_000, us/1000%1000, us%1000)
}
