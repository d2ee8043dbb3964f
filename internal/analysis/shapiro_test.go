package analysis

import "testing"

func TestShapiroWilk_NormalShapedSample(t *testing.T) {
	w, p, err := ShapiroWilk(normalFixture(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w <= 0 || w > 1 {
		t.Errorf("W must be in (0,1], got %f", w)
	}
	if p < 0 || p > 1 {
		t.Errorf("p-value out of [0,1]: %f", p)
	}
	if w < 0.98 {
		t.Errorf("normal-shaped data should score W near 1, got %f", w)
	}
	if p < 0.05 {
		t.Errorf("normal-shaped data should not reject H0, p=%f", p)
	}
}

func TestShapiroWilk_SkewedScoresLower(t *testing.T) {
	wNormal, _, err := ShapiroWilk(normalFixture(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wSkewed, pSkewed, err := ShapiroWilk(skewedFixture(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wSkewed >= wNormal {
		t.Errorf("skewed data should score lower W: normal=%f skewed=%f", wNormal, wSkewed)
	}
	if pSkewed >= 0.05 {
		t.Errorf("lognormal data should reject H0, p=%f", pSkewed)
	}
}

func TestShapiroWilk_SmallSamples(t *testing.T) {
	// n=3 uses the exact small-sample distribution.
	w, p, err := ShapiroWilk([]float64{1, 2, 10})
	if err != nil {
		t.Fatalf("unexpected error for n=3: %v", err)
	}
	if w <= 0 || w > 1 || p < 0 || p > 1 {
		t.Errorf("out-of-range result for n=3: W=%f p=%f", w, p)
	}

	// Sizes 4..11 use the first Royston normalization branch.
	for n := 4; n <= 11; n++ {
		w, p, err := ShapiroWilk(normalFixture(n))
		if err != nil {
			t.Fatalf("unexpected error for n=%d: %v", n, err)
		}
		if w <= 0 || w > 1 || p < 0 || p > 1 {
			t.Errorf("out-of-range result for n=%d: W=%f p=%f", n, w, p)
		}
	}
}

func TestShapiroWilk_ErrorCases(t *testing.T) {
	if _, _, err := ShapiroWilk([]float64{1, 2}); err != ErrSampleTooSmall {
		t.Errorf("expected ErrSampleTooSmall for n=2, got %v", err)
	}
	if _, _, err := ShapiroWilk([]float64{4, 4, 4, 4}); err != ErrZeroVariance {
		t.Errorf("expected ErrZeroVariance, got %v", err)
	}
}
