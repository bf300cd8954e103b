// Package remap implements the range-remapping engine: ordered
// piecewise-linear integer mappings applied to sets of half-open intervals.
//
// What:
//
//   - Rule maps every value of [Source, Source+Length) to value+Delta.
//   - Stage is an ordered list of rules; the first rule that overlaps a value
//     claims it, values no rule covers pass through unchanged.
//   - Pipeline chains stages, threading each stage's output into the next.
//   - ApplyStage splits intervals that straddle rule boundaries with an
//     explicit work-list, so every input value lands in exactly one output
//     interval, shifted by the delta of the rule that claimed it (if any).
//   - ApplyPipeline feeds an interval set through every stage, optionally
//     merging between stages, fanning independent intervals out across
//     goroutines, or running the pipeline in reverse.
//   - Map / Unmap / Trace answer the same questions for a single value.
//
// Complexity:
//
//   - ApplyStage:    O(F×R) where F = fragments produced, R = rules in the stage.
//     Each rule splits a fragment into at most three pieces, so F ≤ n×(2R+1).
//   - ApplyPipeline: sum of ApplyStage over all stages.
//   - Map / Unmap:   O(R) per stage.
//
// Options:
//
//   - WithMerge:       normalise the set after each stage.
//   - WithParallelism: process up to n input intervals concurrently.
//   - WithContext:     cancellation, checked between stages.
//   - WithDirection:   Forward (default) or Reverse.
//
// Errors:
//
//   - ErrNegativeLength: a rule with Length < 0 was passed to NewStage.
//   - ErrRangeOverflow:  a rule's source or destination end overflows int64.
//   - ApplyPipeline only ever returns the context's error.
//
// The engine is purely functional: stages and pipelines are read-only once
// built and may be shared between goroutines.
package remap
