package steps

import (
	"github.com/montanaflynn/stats"

	"goexplore/domain/explore"
	"goexplore/internal/analysis"
	"goexplore/internal/render"
)

// BasicStats reports the summary statistics of a sample: min, max, mean,
// sample standard deviation, median, median absolute deviation and the
// descriptive skewness.
type BasicStats struct{}

// NewBasicStats creates the basic numeric stats step.
func NewBasicStats() *BasicStats { return &BasicStats{} }

func (b *BasicStats) Name() string { return "Basic numeric exploration" }

func (b *BasicStats) MinSize() int { return 4 }

func (b *BasicStats) Explore(s *explore.Sample) []explore.Fragment {
	data := s.Values()

	min, _ := stats.Min(data)
	max, _ := stats.Max(data)
	mean, _ := stats.Mean(data)
	std, _ := stats.StandardDeviationSample(data)
	median, _ := stats.Median(data)
	mad, _ := stats.MedianAbsoluteDeviation(data)
	skewness := analysis.Skewness(data)

	return []explore.Fragment{
		explore.Info("--- Starting numeric data exploration ---"),
		explore.Info("Data min=%s, max=%s.", render.FormatFloat(min, 2), render.FormatFloat(max, 2)),
		explore.Info("Data mean is %s, std is %s", render.FormatFloat(mean, 2), render.FormatFloat(std, 2)),
		explore.Info("It's also usefull to examine the two corresponding outlier-robust stats:"),
		explore.Info("Median=%s, median absolute deviation (MAD)=%s.",
			render.FormatFloat(median, 2), render.FormatFloat(mad, 2)),
		// The left-tail wording for positive skewness is kept verbatim for
		// behavioral parity with the tool this replaces, even though it
		// inverts the textbook convention. See DESIGN.md.
		explore.Info("Data skewness is %s. For normally distributed data, the skewness "+
			"should be about 0. A skewness value > 0 means that there is more weight "+
			"in the left tail of the distribution.", render.FormatFloat(skewness, 2)),
	}
}
