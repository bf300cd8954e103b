package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines returns the non-empty lines of r, without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runner: read lines: %w", err)
	}
	return lines, nil
}

// ReadGroups returns the blank-line separated groups of r. Each group keeps
// its inner newlines; empty groups are dropped.
func ReadGroups(r io.Reader) ([]string, error) {
	var (
		groups []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			groups = append(groups, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runner: read groups: %w", err)
	}
	flush()
	return groups, nil
}

// InputPath returns <root>/crates/aoc<year>/input/<year>-<dd>.txt.
func InputPath(root string, year, day int) string {
	return puzzlePath(root, "input", year, day)
}

// TestPath returns <root>/crates/aoc<year>/test/<year>-<dd>.txt.
func TestPath(root string, year, day int) string {
	return puzzlePath(root, "test", year, day)
}

func puzzlePath(root, kind string, year, day int) string {
	return filepath.Join(root, "crates", fmt.Sprintf("aoc%d", year), kind, fmt.Sprintf("%d-%02d.txt", year, day))
}

// OpenInput opens the puzzle input for s under root.
func OpenInput(root string, s Solver) (*os.File, error) {
	year, day := s.Name()
	f, err := os.Open(InputPath(root, year, day))
	if err != nil {
		return nil, fmt.Errorf("runner: open input: %w", err)
	}
	return f, nil
}
