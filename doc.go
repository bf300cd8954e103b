// Package rangemap remaps sets of integer ranges through chains of
// piecewise-linear maps without ever enumerating the values inside them.
//
// What is in here?
//
//	interval/  the half-open [Start, End) value type and interval-set helpers
//	remap/     rules, stages, pipelines and the interval-splitting engine
//	almanac/   seed almanac codecs (puzzle text and YAML), category chaining,
//	           part 1 / part 2 answers
//	runner/    the timed solve harness and input readers
//	cmd/       the almanac command line tool
//
// Quick example:
//
//	seeds [79,93)  ──seed-to-soil──▶  [81,95)  ──…──▶  location, lowest 46
//
// A range that straddles a rule boundary is split: the covered part is
// shifted by the rule's delta, the rest is tried against the remaining
// rules and passes through unchanged if none claims it.
//
//	go install github.com/katalvlaran/rangemap/cmd/almanac@latest
package rangemap
