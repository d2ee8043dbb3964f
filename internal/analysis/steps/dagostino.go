package steps

import (
	"goexplore/domain/explore"
	"goexplore/internal/analysis"
)

// DAgostinoTest runs the D'Agostino-Pearson K^2 omnibus test for normality,
// combining the skewness and kurtosis z-scores.
type DAgostinoTest struct {
	alpha float64
}

// NewDAgostinoTest creates the D'Agostino K^2 normality test step.
func NewDAgostinoTest(alpha float64) *DAgostinoTest {
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	return &DAgostinoTest{alpha: alpha}
}

func (t *DAgostinoTest) Name() string { return "D'Agostino's K^2 normality test" }

func (t *DAgostinoTest) MinSize() int { return 8 }

func (t *DAgostinoTest) Explore(s *explore.Sample) []explore.Fragment {
	k2, pvalue, err := analysis.DAgostinoK2(s.Values())
	if err != nil {
		return []explore.Fragment{explore.Skip(t.Name(), "Zero variance in data")}
	}

	out := []explore.Fragment{
		explore.Info("Performing the D'Agostino's K^2 test for normality..."),
		explore.Info("Null hypothesis (H0): The data comes from a normal dist."),
		explore.Info("Test statistic: %.3f p-value: %.3f", k2, pvalue),
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
