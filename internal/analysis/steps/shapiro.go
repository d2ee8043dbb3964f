package steps

import (
	"fmt"

	"goexplore/domain/explore"
	"goexplore/internal/analysis"
)

// DefaultMaxShapiroSize caps the Shapiro-Wilk test; above it the p-value
// approximation is unreliable and the step is skipped.
const DefaultMaxShapiroSize = 5000

// ShapiroWilkTest runs the Shapiro-Wilk test for normality.
type ShapiroWilkTest struct {
	alpha   float64
	maxSize int
}

// NewShapiroWilkTest creates the Shapiro-Wilk normality test step. Zero
// values select DefaultAlpha and DefaultMaxShapiroSize.
func NewShapiroWilkTest(alpha float64, maxSize int) *ShapiroWilkTest {
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	if maxSize == 0 {
		maxSize = DefaultMaxShapiroSize
	}
	return &ShapiroWilkTest{alpha: alpha, maxSize: maxSize}
}

func (t *ShapiroWilkTest) Name() string { return "Shapiro-Wilk normality test" }

func (t *ShapiroWilkTest) MinSize() int { return 3 }

func (t *ShapiroWilkTest) Guards() []Guard {
	return []Guard{
		{
			Reason: fmt.Sprintf("More than %d non-null values", t.maxSize),
			Holds:  func(s *explore.Sample) bool { return s.NonNullCount() <= t.maxSize },
		},
	}
}

func (t *ShapiroWilkTest) Explore(s *explore.Sample) []explore.Fragment {
	w, pvalue, err := analysis.ShapiroWilk(s.Values())
	if err != nil {
		return []explore.Fragment{explore.Skip(t.Name(), "Zero variance in data")}
	}

	out := []explore.Fragment{
		explore.Info("Performing the Shapiro-Wilk test for normality..."),
		explore.Info("Null hypothesis (H0): The data comes from a normal dist."),
		explore.Info("Test statistic: %.3f p-value: %.3f", w, pvalue),
	}
	if pvalue < t.alpha {
		out = append(out, explore.Info("The p-value is smaller than the set α; the null "+
			"hypothesis - that the data is normally distributed - can be rejected."))
	} else {
		out = append(out, explore.Info("The p-value is larger than the set α; the null "+
			"hypothesis - that the data is normally distributed - cannot be rejected."))
	}
	return out
}
