package profiling

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"goexplore/domain/explore"
)

const (
	// maxChartRows caps the value-counts chart at the most frequent values.
	maxChartRows = 10
	// maxLabelRunes truncates long value labels in the chart.
	maxLabelRunes = 18
	// maxBarWidth is the width of the longest chart bar.
	maxBarWidth = 40
)

// ValueCount pairs a distinct value's display label with its frequency.
type ValueCount struct {
	Label string
	Count int
}

// countValues tallies the non-null values of a column in descending
// frequency order (ties keep first-seen order, so the result is a pure
// function of the input). It also reports the distinct and missing counts.
func countValues(values []any) (counts []ValueCount, missing int) {
	index := make(map[string]int)
	for _, v := range values {
		if isNull(v) {
			missing++
			continue
		}
		label := displayValue(v)
		if i, seen := index[label]; seen {
			counts[i].Count++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, ValueCount{Label: label, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, missing
}

// renderValueCounts draws a text bar chart of the most frequent values.
func renderValueCounts(name string, counts []ValueCount, total int) []explore.Fragment {
	rows := counts
	if len(rows) > maxChartRows {
		rows = rows[:maxChartRows]
	}

	out := []explore.Fragment{
		explore.Info("%d most frequent values of %s:", len(rows), name),
	}
	top := rows[0].Count
	for _, row := range rows {
		label := row.Label
		if len([]rune(label)) > maxLabelRunes {
			label = string([]rune(label)[:maxLabelRunes]) + "..."
		}
		width := int(math.Round(float64(row.Count) / float64(top) * maxBarWidth))
		if width < 1 {
			width = 1
		}
		out = append(out, explore.Info("%s (%.2f%%) | %s",
			label, float64(row.Count)*100/float64(total), strings.Repeat("#", width)))
	}
	return out
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		return true
	}
	return false
}

func displayValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
