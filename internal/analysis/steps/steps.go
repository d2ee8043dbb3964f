// Package steps defines the numeric exploration steps and the pipeline that
// runs them over one column sample. Each step declares a minimum non-null
// sample size; a sample below it yields a skip notice instead of an error,
// and steps never short-circuit each other.
package steps

import "goexplore/domain/explore"

// DefaultAlpha is the significance level used by every hypothesis-testing
// step unless the pipeline is constructed with a different one.
const DefaultAlpha = 0.05

// Step is a single statistical check over a column sample.
type Step interface {
	Name() string
	// MinSize is the minimum non-null count required to run.
	MinSize() int
	// Explore runs the check. Called only after all preconditions hold.
	Explore(s *explore.Sample) []explore.Fragment
}

// Guard is a step-specific precondition beyond the shared minimum-size
// check. When Holds returns false the step is skipped with Reason.
type Guard struct {
	Reason string
	Holds  func(s *explore.Sample) bool
}

// guarded is implemented by steps that carry extra preconditions.
type guarded interface {
	Guards() []Guard
}

// failedPrecondition evaluates a step's preconditions against the sample,
// returning the first failure reason.
func failedPrecondition(st Step, s *explore.Sample) (string, bool) {
	if s.NonNullCount() < st.MinSize() {
		return minSizeReason(st.MinSize()), true
	}
	if g, ok := st.(guarded); ok {
		for _, guard := range g.Guards() {
			if !guard.Holds(s) {
				return guard.Reason, true
			}
		}
	}
	return "", false
}

func minSizeReason(min int) string {
	switch min {
	case 1:
		return "No non-null values"
	case 3:
		return "Less than three non-null values"
	case 4:
		return "Less than four non-null values"
	case 8:
		return "Less than eight non-null values"
	default:
		return "Too few non-null values"
	}
}
