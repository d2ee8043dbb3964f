// Package profiling explores one column at a time: generic cardinality and
// missingness checks for every column, then the numeric pipeline for columns
// whose declared kind allows it.
package profiling

import (
	"goexplore/domain/explore"
	"goexplore/internal/analysis/steps"
	"goexplore/internal/render"
)

// DefaultTopShareThreshold is the minimum share the most frequent value must
// exceed for the value-counts chart to be drawn. At the default, a value
// appearing once in four entries is considered too low-frequency to chart.
const DefaultTopShareThreshold = 0.25

const valueCountsCheckName = "Value counts plot"

// NonNumericSkipReason is the skip reason attached to every numeric-only
// step when a column's declared kind is non-numeric.
const NonNumericSkipReason = "dtype is non-numeric"

// ColumnExplorer runs the generic checks plus the kind-appropriate pipeline
// against a single column.
type ColumnExplorer struct {
	pipeline          *steps.NumericPipeline
	topShareThreshold float64
}

// NewColumnExplorer wraps a numeric pipeline. A zero threshold selects
// DefaultTopShareThreshold.
func NewColumnExplorer(pipeline *steps.NumericPipeline, topShareThreshold float64) *ColumnExplorer {
	if topShareThreshold == 0 {
		topShareThreshold = DefaultTopShareThreshold
	}
	return &ColumnExplorer{pipeline: pipeline, topShareThreshold: topShareThreshold}
}

// Explore produces the column's full report: cardinality, missingness, the
// value-counts chart (or its skip notice), then either the numeric pipeline
// or one skip per numeric step for non-numeric columns.
func (e *ColumnExplorer) Explore(col explore.Column) explore.Report {
	total := col.Len()
	counts, missing := countValues(col.Values)

	// Missing counts as one distinct value in the cardinality line, while
	// the value-counts chart below sees only the non-null values.
	unique := len(counts)
	if missing > 0 {
		unique++
	}

	report := explore.Report{
		explore.Info("Starting to explore column %s.", col.Name),
		explore.Info("dtype: %s", col.Kind),
		explore.Info("%s unique values over %s entries.",
			render.FormatCount(unique), render.FormatCount(total)),
	}
	if total > 0 {
		report = append(report, explore.Info("%.2f%% missing values (%s).",
			float64(missing)*100/float64(total), render.FormatCount(missing)))
	} else {
		report = append(report, explore.Info("0.00%% missing values (0)."))
	}

	report = append(report, e.valueCounts(col.Name, counts, total)...)

	switch col.Kind {
	case explore.KindNumeric:
		report = append(report, e.pipeline.Apply(col.Values)...)
	default:
		report = append(report, e.pipeline.SkipAll(NonNumericSkipReason)...)
	}
	return report
}

func (e *ColumnExplorer) valueCounts(name string, counts []ValueCount, total int) explore.Report {
	if len(counts) < 2 {
		return explore.Report{explore.Skip(valueCountsCheckName, "Less than two unique values")}
	}
	if float64(counts[0].Count) <= e.topShareThreshold*float64(total) {
		return explore.Report{explore.Skip(valueCountsCheckName, "Low frequency of most-frequent value")}
	}
	return renderValueCounts(name, counts, total)
}
