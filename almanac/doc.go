// Package almanac reads seed almanacs and answers the two seed-location
// questions with the remap engine.
//
// An almanac lists seeds and a set of category maps:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each map line is "destination source length". Maps are linked by category
// name, not by their order in the file: Pipeline("seed", "location") follows
// seed→soil→…→location through whichever maps name those categories.
//
// Part 1 treats every seed number as a single seed; part 2 reads the seed
// numbers as (start, length) pairs. Both report the lowest location reached.
//
// Almanacs can also be stored as YAML (see Almanac.MarshalYAML) and loaded
// from either format with LoadFile.
package almanac
