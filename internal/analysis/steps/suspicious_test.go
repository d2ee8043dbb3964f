package steps

import (
	"math"
	"strings"
	"testing"

	"goexplore/domain/explore"
)

func warningsOf(fragments []explore.Fragment) []explore.Fragment {
	var out []explore.Fragment
	for _, f := range fragments {
		if f.Level == explore.LevelWarning {
			out = append(out, f)
		}
	}
	return out
}

func TestSuspiciousScan_Uint16Max(t *testing.T) {
	step := NewSuspiciousValueScan()
	sample := explore.NewSample([]any{1.0, 65535.0, 2.0})

	warnings := warningsOf(step.Explore(sample))
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	text := warnings[0].Text
	for _, want := range []string{"65,535 found 1 times", "2^16-1", "an unsigned 16-bit", "max"} {
		if !strings.Contains(text, want) {
			t.Errorf("warning missing %q: %s", want, text)
		}
	}
}

func TestSuspiciousScan_Uint64Max(t *testing.T) {
	step := NewSuspiciousValueScan()
	sample := explore.NewSample([]any{math.Ldexp(1, 64) - 1, 3.0})

	warnings := warningsOf(step.Explore(sample))
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0].Text, "2^64-1") {
		t.Errorf("expected the 64-bit unsigned max sentinel, got: %s", warnings[0].Text)
	}
}

func TestSuspiciousScan_OccurrenceCount(t *testing.T) {
	step := NewSuspiciousValueScan()
	sample := explore.NewSample([]any{255.0, 255.0, 255.0, 7.0})

	warnings := warningsOf(step.Explore(sample))
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0].Text, "255 found 3 times") {
		t.Errorf("expected occurrence count 3, got: %s", warnings[0].Text)
	}
}

func TestSuspiciousScan_NoMatchesYieldsNothing(t *testing.T) {
	step := NewSuspiciousValueScan()
	sample := explore.NewSample([]any{1.1, 2.2, 3.3})

	if out := step.Explore(sample); len(out) != 0 {
		t.Errorf("expected no fragments without matches, got %d", len(out))
	}
}

func TestSuspiciousScan_AllNineSentinelIsInformational(t *testing.T) {
	step := NewSuspiciousValueScan()
	sample := explore.NewSample([]any{999.0, 1.0, 2.0})

	out := step.Explore(sample)
	if len(out) != 1 {
		t.Fatalf("expected one fragment, got %d", len(out))
	}
	if out[0].Level != explore.LevelInfo {
		t.Errorf("all-9 sentinels are informational, got level %v", out[0].Level)
	}
	if !strings.Contains(out[0].Text, "999 found 1 times") {
		t.Errorf("unexpected text: %s", out[0].Text)
	}
}

func TestSuspiciousScan_ColumnLength(t *testing.T) {
	step := NewSuspiciousValueScan()
	values := make([]any, 255)
	for i := range values {
		values[i] = float64(i) + 0.5
	}
	sample := explore.NewSample(values)

	warnings := warningsOf(step.Explore(sample))
	if len(warnings) != 1 {
		t.Fatalf("expected one length warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0].Text, "Column length is 255") {
		t.Errorf("expected column-length warning, got: %s", warnings[0].Text)
	}
	if !strings.Contains(warnings[0].Text, "trimmed or sliced") {
		t.Errorf("expected trim explanation, got: %s", warnings[0].Text)
	}
}

func TestIntegerBoundCatalog_CoversAllWidths(t *testing.T) {
	seen := map[int]map[string]bool{}
	for _, b := range IntegerBoundCatalog() {
		if seen[b.Bits] == nil {
			seen[b.Bits] = map[string]bool{}
		}
		seen[b.Bits][b.MinMax] = true
		if b.Equivalent == "" || b.Location == "" || b.Sign == "" {
			t.Errorf("catalog entry for %v lacks an explanation", b.Number)
		}
	}
	for _, bits := range []int{8, 16, 32, 64, 128} {
		if !seen[bits]["min"] || !seen[bits]["max"] {
			t.Errorf("catalog missing min/max entries for %d-bit width", bits)
		}
	}
}
