package runner

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Stopwatch accumulates elapsed time into named buckets. A bucket may be
// started and stopped repeatedly; its durations add up. Safe for concurrent use.
type Stopwatch struct {
	mu      sync.Mutex
	buckets map[string]time.Duration
	starts  map[string]time.Time
	now     func() time.Time
}

// NewStopwatch returns an empty Stopwatch using the wall clock.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
		now:     time.Now,
	}
}

// Start begins timing bucket b, restarting it if already running.
func (s *Stopwatch) Start(b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.starts[b] = s.now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

// Stop ends timing bucket b and returns the time since its Start.
// Stopping a bucket that is not running is a no-op returning 0.
func (s *Stopwatch) Stop(b string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.starts[b]
	if !ok {
		return 0
	}
	d := s.now().Sub(start)
	s.buckets[b] += d
	delete(s.starts, b)
	return d
}

// Elapsed returns the total recorded for bucket b.
func (s *Stopwatch) Elapsed(b string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buckets[b]
}

// Snapshot returns a copy of every bucket's total.
func (s *Stopwatch) Snapshot() map[string]time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Duration, len(s.buckets))
	for k, v := range s.buckets {
		out[k] = v
	}
	return out
}

// Results formats every bucket as "name: seconds" lines, sorted by name.
func (s *Stopwatch) Results() string {
	snap := s.Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	slices.Sort(names)

	var sb strings.Builder
	for _, k := range names {
		fmt.Fprintf(&sb, "%s: %.4f\n", k, snap[k].Seconds())
	}
	return sb.String()
}
