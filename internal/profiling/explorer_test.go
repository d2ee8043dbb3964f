package profiling

import (
	"strings"
	"testing"

	"goexplore/domain/explore"
	"goexplore/internal/analysis/steps"
)

func newExplorer() *ColumnExplorer {
	return NewColumnExplorer(steps.NewNumericPipeline(0, 0), 0)
}

func TestExplore_MissingPercentage(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "price",
		Kind:   explore.KindNumeric,
		Values: []any{1.0, nil, 2.0, 3.0},
	}

	text := e.Explore(col).Text()
	if !strings.Contains(text, "25.00% missing values (1).") {
		t.Errorf("expected exact missing percentage, got:\n%s", text)
	}
	// Missing counts as one of the distinct values here.
	if !strings.Contains(text, "4 unique values over 4 entries.") {
		t.Errorf("expected cardinality line, got:\n%s", text)
	}
}

func TestExplore_CardinalityWithoutMissing(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "price",
		Kind:   explore.KindNumeric,
		Values: []any{1.0, 2.0, 2.0, 3.0},
	}

	text := e.Explore(col).Text()
	if !strings.Contains(text, "3 unique values over 4 entries.") {
		t.Errorf("expected cardinality line, got:\n%s", text)
	}
	if !strings.Contains(text, "0.00% missing values (0).") {
		t.Errorf("expected missing line, got:\n%s", text)
	}
}

func TestExplore_NonNumericSkipsEveryNumericStep(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "city",
		Kind:   explore.KindNonNumeric,
		Values: []any{"a", "b", "a", "a"},
	}

	report := e.Explore(col)
	skips := 0
	for _, f := range report {
		if f.Level == explore.LevelSkip && strings.Contains(f.Text, NonNumericSkipReason) {
			skips++
		}
	}
	if skips != 5 {
		t.Errorf("expected 5 non-numeric skips, got %d:\n%s", skips, report.Text())
	}
}

func TestExplore_ValueCountsChart(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "city",
		Kind:   explore.KindNonNumeric,
		Values: []any{"paris", "paris", "paris", "lyon"},
	}

	text := e.Explore(col).Text()
	if !strings.Contains(text, "most frequent values of city:") {
		t.Errorf("expected chart title, got:\n%s", text)
	}
	if !strings.Contains(text, "paris (75.00%)") {
		t.Errorf("expected top value share, got:\n%s", text)
	}
}

func TestExplore_ValueCountsSkipLowFrequency(t *testing.T) {
	e := newExplorer()
	// Four distinct values: the top one holds a 1-of-4 share, which is low.
	col := explore.Column{
		Name:   "id",
		Kind:   explore.KindNonNumeric,
		Values: []any{"a", "b", "c", "d"},
	}

	text := e.Explore(col).Text()
	if !strings.Contains(text, "Value counts plot skipped. Reason: Low frequency of most-frequent value.") {
		t.Errorf("expected low-frequency skip, got:\n%s", text)
	}
}

func TestExplore_ValueCountsSkipSingleUniqueValue(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "constant",
		Kind:   explore.KindNonNumeric,
		Values: []any{"x", "x", "x", "x"},
	}

	text := e.Explore(col).Text()
	if !strings.Contains(text, "Value counts plot skipped. Reason: Less than two unique values.") {
		t.Errorf("expected unique-values skip, got:\n%s", text)
	}
}

func TestExplore_SmallNumericColumnStillRunsPipeline(t *testing.T) {
	e := newExplorer()
	col := explore.Column{
		Name:   "tiny",
		Kind:   explore.KindNumeric,
		Values: []any{1.0, 2.0},
	}

	text := e.Explore(col).Text()
	// The pipeline runs; every step below its minimum skips on its own.
	if !strings.Contains(text, "Basic numeric exploration skipped. Reason: Less than four non-null values.") {
		t.Errorf("expected per-step skip, got:\n%s", text)
	}
}

func TestCountValues_OrderIsDeterministic(t *testing.T) {
	values := []any{"b", "a", "b", "a", "c"}
	first, _ := countValues(values)
	second, _ := countValues(values)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("value counts not deterministic: %v vs %v", first, second)
		}
	}
	// Ties keep first-seen order.
	if first[0].Label != "b" || first[1].Label != "a" {
		t.Errorf("expected first-seen tie order, got %v", first)
	}
}
