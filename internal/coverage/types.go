// Package coverage classifies per-file test coverage and ranks the gaps.
package coverage

// Status is the coverage classification of one source file, derived from
// the textual content of its candidate test file.
type Status string

const (
	// StatusNoTest means no test file exists for the source file
	StatusNoTest Status = "no_test"
	// StatusSkeletonOnly means the test file holds only TODO stubs
	StatusSkeletonOnly Status = "skeleton_only"
	// StatusPartial means the test file mixes real assertions and stubs
	StatusPartial Status = "partial"
	// StatusCovered means the test file asserts without remaining stubs
	StatusCovered Status = "covered"
)

// statusWeight feeds the priority formula; untested files outrank
// skeletons, which outrank partially covered ones.
var statusWeight = map[Status]float64{
	StatusNoTest:       1.0,
	StatusSkeletonOnly: 0.5,
	StatusPartial:      0.2,
}

// Gap is one prioritized coverage gap. SuggestedCommand is advisory text
// only; nothing parses it.
type Gap struct {
	SourcePath       string  `json:"sourcePath"`
	Status           Status  `json:"status"`
	PriorityScore    float64 `json:"priorityScore"`
	ExternalDeps     int     `json:"externalDeps"`
	Dependents       int     `json:"dependents"`
	SuggestedCommand string  `json:"suggestedCommand"`
}
