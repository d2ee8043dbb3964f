package steps

import "goexplore/domain/explore"

// NumericPipeline is the ordered sequence of exploration steps run against
// one column sample. It holds no mutable state: applying it twice to the
// same input produces byte-identical reports.
type NumericPipeline struct {
	steps []Step
}

// NewNumericPipeline builds the default pipeline: basic stats, skewness
// test, Shapiro-Wilk, D'Agostino K-squared, suspicious-value scan. An alpha
// of zero selects DefaultAlpha; a maxShapiroSize of zero selects
// DefaultMaxShapiroSize.
func NewNumericPipeline(alpha float64, maxShapiroSize int) *NumericPipeline {
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	return &NumericPipeline{
		steps: []Step{
			NewBasicStats(),
			NewSkewnessTest(alpha),
			NewShapiroWilkTest(alpha, maxShapiroSize),
			NewDAgostinoTest(alpha),
			NewSuspiciousValueScan(),
		},
	}
}

// Steps returns the pipeline's steps in run order.
func (p *NumericPipeline) Steps() []Step { return p.steps }

// Apply builds a Sample from the raw nullable values and runs every step
// over it in order, concatenating their outcomes into one report.
func (p *NumericPipeline) Apply(values []any) explore.Report {
	return p.ApplySample(explore.NewSample(values))
}

// ApplySample runs the pipeline over an already-built sample. Steps whose
// preconditions fail contribute a single skip fragment; the remaining steps
// still run.
func (p *NumericPipeline) ApplySample(s *explore.Sample) explore.Report {
	var report explore.Report
	for _, st := range p.steps {
		if reason, failed := failedPrecondition(st, s); failed {
			report = append(report, explore.Skip(st.Name(), reason))
			continue
		}
		report = append(report, st.Explore(s)...)
	}
	return report
}

// SkipAll emits one skip fragment per step with a shared reason. Used for
// columns whose declared kind rules the whole pipeline out.
func (p *NumericPipeline) SkipAll(reason string) explore.Report {
	report := make(explore.Report, 0, len(p.steps))
	for _, st := range p.steps {
		report = append(report, explore.Skip(st.Name(), reason))
	}
	return report
}
