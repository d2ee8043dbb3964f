package explore

import "math"

// Sample holds the null-stripped numeric values of one column. It is built
// once per pipeline application and never mutated afterwards; steps read it
// through accessors only.
type Sample struct {
	values        []float64
	originalCount int
}

// NewSample extracts the numeric values from an ordered sequence of nullable
// cells. Nils, NaNs and cells that are not numeric are dropped; the relative
// order of the retained values is preserved. An empty result is valid -
// downstream steps handle it through their size thresholds.
func NewSample(values []any) *Sample {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		f, ok := asFloat(v)
		if !ok || math.IsNaN(f) {
			continue
		}
		kept = append(kept, f)
	}
	return &Sample{values: kept, originalCount: len(values)}
}

// Values returns the retained numeric values in their original order.
// Callers must not mutate the returned slice.
func (s *Sample) Values() []float64 { return s.values }

// OriginalCount returns the number of entries before null stripping.
func (s *Sample) OriginalCount() int { return s.originalCount }

// NullCount returns the number of dropped entries.
func (s *Sample) NullCount() int { return s.originalCount - len(s.values) }

// NonNullCount returns the number of retained entries.
func (s *Sample) NonNullCount() int { return len(s.values) }

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
