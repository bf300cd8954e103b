package almanac

import "errors"

var (
	// ErrMissingSeeds indicates the input does not open with a "seeds:" line.
	ErrMissingSeeds = errors.New("almanac: missing seeds line")

	// ErrBadHeader indicates a map group whose first line is not "<a>-to-<b> map:".
	ErrBadHeader = errors.New("almanac: malformed map header")

	// ErrBadRule indicates a map line that is not three integers, whose
	// length is negative, or whose ranges overflow int64.
	ErrBadRule = errors.New("almanac: malformed map rule")

	// ErrBadNumber indicates a token that is not a base-10 integer.
	ErrBadNumber = errors.New("almanac: malformed number")

	// ErrOddSeedRanges indicates seed ranges were requested from an odd
	// number of seed values.
	ErrOddSeedRanges = errors.New("almanac: seed ranges need an even number of values")

	// ErrBadSeedRange indicates a (start, length) seed pair with a negative
	// length or an end beyond int64.
	ErrBadSeedRange = errors.New("almanac: seed range out of bounds")

	// ErrNoSeeds indicates there is nothing to look up.
	ErrNoSeeds = errors.New("almanac: no seeds")

	// ErrNoChain indicates no map leaves a category on the way to the target.
	ErrNoChain = errors.New("almanac: no map leads onward from category")

	// ErrAmbiguousChain indicates more than one map leaves the same category.
	ErrAmbiguousChain = errors.New("almanac: several maps leave category")

	// ErrCycle indicates the category chain revisits a category.
	ErrCycle = errors.New("almanac: category chain loops")

	// ErrUnknownFormat indicates LoadFile could not pick a decoder.
	ErrUnknownFormat = errors.New("almanac: unknown input format")
)

// ErrNotParsed is returned by Solver parts called before Parse.
var ErrNotParsed = errors.New("almanac: solver has no parsed input")
