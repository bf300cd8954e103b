package interval_test

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

// ExampleInterval_Intersect splits a seed range around a rule's source range.
func ExampleInterval_Intersect() {
	seeds := interval.New(8, 5) // [8,13)
	rule := interval.New(10, 5) // [10,15)

	fmt.Println("overlap:", seeds.Intersect(rule))
	fmt.Println("below:  ", seeds.Below(rule.Start))
	fmt.Println("shifted:", seeds.Intersect(rule).Shift(7))
	// Output:
	// overlap: [10,13)
	// below:   [8,10)
	// shifted: [17,20)
}

// ExampleMerge normalises an unordered, overlapping set.
func ExampleMerge() {
	xs := []interval.Interval{{Start: 55, End: 68}, {Start: 79, End: 93}, {Start: 60, End: 80}}
	fmt.Println(interval.Merge(xs))
	// Output:
	// [[55,93)]
}
