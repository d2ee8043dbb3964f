// Package app wires the column explorer into table-level exploration
// services. Reports are built as pure values; writing them anywhere is the
// caller's concern.
package app

import (
	"fmt"

	"goexplore/domain/core"
	"goexplore/domain/explore"
	"goexplore/internal/analysis/steps"
	"goexplore/internal/profiling"
	"goexplore/internal/render"
)

// ExplorerService explores whole tables and single columns.
type ExplorerService struct {
	columns *profiling.ColumnExplorer
}

// NewExplorerService builds a service around the default numeric pipeline.
// Zero values select the package defaults for alpha, the chart threshold and
// the Shapiro-Wilk size cap.
func NewExplorerService(alpha, topShareThreshold float64, maxShapiroSize int) *ExplorerService {
	pipeline := steps.NewNumericPipeline(alpha, maxShapiroSize)
	return &ExplorerService{
		columns: profiling.NewColumnExplorer(pipeline, topShareThreshold),
	}
}

// ExploreTable iterates the dataset's columns in declared order, prefixing
// each column report with a section header. It fails fast on malformed
// datasets and mutates nothing.
func (s *ExplorerService) ExploreTable(ds explore.Dataset) (explore.Report, error) {
	if ds.ColumnCount() == 0 {
		return nil, core.ErrEmptyDataset
	}
	rows := ds.RowCount()
	for _, col := range ds.Columns {
		if col.Len() != rows {
			return nil, fmt.Errorf("%w: column %q has %d entries, want %d",
				core.ErrRaggedDataset, col.Name, col.Len(), rows)
		}
	}

	report := explore.Report{
		explore.Info("Exploring dataset: %s rows x %s columns.",
			render.FormatCount(rows), render.FormatCount(ds.ColumnCount())),
	}
	for _, col := range ds.Columns {
		report = append(report, columnHeader(col.Name))
		report = append(report, s.columns.Explore(col)...)
	}
	return report, nil
}

// ExploreColumn explores a single column directly.
func (s *ExplorerService) ExploreColumn(col explore.Column) explore.Report {
	report := explore.Report{columnHeader(col.Name)}
	return append(report, s.columns.Explore(col)...)
}

// ExploreColumnByName looks a column up in the dataset and explores it,
// failing fast when the dataset does not carry it.
func (s *ExplorerService) ExploreColumnByName(ds explore.Dataset, name string) (explore.Report, error) {
	col, ok := ds.Column(name)
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return s.ExploreColumn(col), nil
}

func columnHeader(name string) explore.Fragment {
	return explore.Header("=================== %s =============================", name)
}
