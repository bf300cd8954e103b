package almanac

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rangemap/remap"
	"github.com/katalvlaran/rangemap/runner"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	nameSep     = "-to-"
)

// Parse reads an almanac in puzzle text form.
// Malformed input yields an error wrapping one of ErrMissingSeeds,
// ErrBadHeader, ErrBadRule or ErrBadNumber; Parse never panics.
func Parse(r io.Reader) (*Almanac, error) {
	groups, err := runner.ReadGroups(r)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 || !strings.HasPrefix(groups[0], seedsPrefix) {
		return nil, ErrMissingSeeds
	}

	// The seeds line may be followed directly by a map without a blank line.
	head, rest, _ := strings.Cut(groups[0], "\n")
	seeds, err := parseNumbers(strings.TrimPrefix(head, seedsPrefix))
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	a := &Almanac{Seeds: seeds}
	blocks := groups[1:]
	if rest != "" {
		blocks = append([]string{rest}, blocks...)
	}
	for _, g := range blocks {
		st, err := parseStage(g)
		if err != nil {
			return nil, err
		}
		a.Stages = append(a.Stages, st)
	}

	return a, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// parseStage parses one "<from>-to-<to> map:" block.
func parseStage(group string) (remap.Stage, error) {
	lines := strings.Split(group, "\n")
	header := strings.TrimSpace(lines[0])
	from, to, err := parseHeader(header)
	if err != nil {
		return remap.Stage{}, err
	}

	rules := make([]remap.Rule, 0, len(lines)-1)
	for _, line := range lines[1:] {
		nums, err := parseNumbers(line)
		if err != nil {
			return remap.Stage{}, fmt.Errorf("%s: %w", header, err)
		}
		if len(nums) != 3 {
			return remap.Stage{}, fmt.Errorf("%w: %s: %q has %d fields, want 3", ErrBadRule, header, line, len(nums))
		}
		r, err := remap.NewValidRule(nums[0], nums[1], nums[2])
		if err != nil {
			return remap.Stage{}, fmt.Errorf("%w: %s: %q: %w", ErrBadRule, header, line, err)
		}
		rules = append(rules, r)
	}

	st, err := remap.NewStage(from, to, rules...)
	if err != nil {
		return remap.Stage{}, fmt.Errorf("%w: %s: %w", ErrBadRule, header, err)
	}
	return st, nil
}

// parseHeader splits "seed-to-soil map:" into ("seed", "soil").
func parseHeader(h string) (from, to string, err error) {
	name, ok := strings.CutSuffix(h, mapSuffix)
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrBadHeader, h)
	}
	from, to, ok = strings.Cut(name, nameSep)
	if !ok || from == "" || to == "" || strings.ContainsAny(name, " \t") {
		return "", "", fmt.Errorf("%w: %q", ErrBadHeader, h)
	}
	return from, to, nil
}

func parseNumbers(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		out = append(out, n)
	}
	return out, nil
}

// Format writes a in puzzle text form; Parse(Format(a)) reproduces a.
func (a *Almanac) Format(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(seedsPrefix)
	for _, s := range a.Seeds {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(s, 10))
	}
	sb.WriteByte('\n')
	for _, st := range a.Stages {
		fmt.Fprintf(&sb, "\n%s%s\n", st.Name(), mapSuffix)
		for _, r := range st.Rules {
			fmt.Fprintf(&sb, "%d %d %d\n", r.Source+r.Delta, r.Source, r.Length)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
