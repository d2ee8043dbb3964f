package steps

import (
	"goexplore/domain/explore"
	"goexplore/internal/analysis"
	"goexplore/internal/render"
)

// SkewnessTest tests whether the sample's skewness is compatible with a
// normal distribution.
type SkewnessTest struct {
	alpha float64
}

// NewSkewnessTest creates the skewness significance test step.
func NewSkewnessTest(alpha float64) *SkewnessTest {
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	return &SkewnessTest{alpha: alpha}
}

func (t *SkewnessTest) Name() string { return "Skewness test" }

func (t *SkewnessTest) MinSize() int { return 8 }

func (t *SkewnessTest) Explore(s *explore.Sample) []explore.Fragment {
	zscore, pvalue, err := analysis.SkewTest(s.Values())
	if err != nil {
		return []explore.Fragment{explore.Skip(t.Name(), "Zero variance in data")}
	}

	out := []explore.Fragment{
		explore.Info("Performing skewness test with α=%v. H0 is that the skewness of the "+
			"population that the sample was drawn from is the same as that of a "+
			"corresponding normal distribution.", t.alpha),
		explore.Info("Skew test z-score is %s, p-value is %s",
			render.FormatFloat(zscore, 2), render.FormatFloat(pvalue, 2)),
	}
	if pvalue < t.alpha {
		out = append(out, explore.Info("The p-value is smaller than the set α; the null "+
			"hypothesis can be rejected: data skewness is not normal-like."))
	} else {
		out = append(out, explore.Info("The p-value is larger than the set α; the null "+
			"hypothesis cannot be rejected: data skewness is normal-like."))
	}
	return out
}
