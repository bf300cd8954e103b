// Package runner is the harness shared by puzzle solvers: it parses input,
// runs both parts, and prints each answer with the time it took.
//
// A solver implements Solver. Run drives it:
//
//	---- 2023, Day 5 ----
//	  0.000 Parsing
//	  0.000.041 Part 1: 35
//	  0.000.087 Part 2: 46
//
// The package also provides the small input helpers solvers share:
// ReadLines, ReadGroups and the conventional input/test file paths.
package runner
