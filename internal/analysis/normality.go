package analysis

import (
	"errors"
	"math"
)

// ErrZeroVariance is returned when a test statistic is undefined because all
// sample values are identical.
var ErrZeroVariance = errors.New("zero variance in data")

// ErrSampleTooSmall is returned when a test's minimum sample size is not met.
// Callers are expected to check sizes up front; this is the backstop.
var ErrSampleTooSmall = errors.New("sample too small for test")

// SkewTest runs D'Agostino's test of skewness significance (D'Agostino 1970,
// as popularized by the transformation of D'Agostino, Belanger & D'Agostino
// 1990). H0: the skewness of the population the sample was drawn from matches
// that of a normal distribution. Requires at least 8 values.
func SkewTest(data []float64) (zscore, pvalue float64, err error) {
	n := len(data)
	if n < 8 {
		return 0, 0, ErrSampleTooSmall
	}
	if isConstant(data) {
		return 0, 0, ErrZeroVariance
	}

	fn := float64(n)
	b1 := Skewness(data)
	y := b1 * math.Sqrt(((fn+1)*(fn+3))/(6*(fn-2)))
	beta2 := 3 * (fn*fn + 27*fn - 70) * (fn + 1) * (fn + 3) /
		((fn - 2) * (fn + 5) * (fn + 7) * (fn + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))
	if y == 0 {
		y = 1
	}
	z := delta * math.Log(y/alpha+math.Sqrt((y/alpha)*(y/alpha)+1))
	return z, TwoSidedNormalPValue(z), nil
}

// KurtosisTest runs the Anscombe-Glynn test of kurtosis significance.
// Requires at least 5 values; DAgostinoK2 is its only caller and enforces a
// stricter minimum.
func KurtosisTest(data []float64) (zscore, pvalue float64, err error) {
	n := len(data)
	if n < 5 {
		return 0, 0, ErrSampleTooSmall
	}
	if isConstant(data) {
		return 0, 0, ErrZeroVariance
	}

	fn := float64(n)
	b2 := Kurtosis(data)
	expected := 3 * (fn - 1) / (fn + 1)
	variance := 24 * fn * (fn - 2) * (fn - 3) /
		((fn + 1) * (fn + 1) * (fn + 3) * (fn + 5))
	x := (b2 - expected) / math.Sqrt(variance)

	sqrtBeta1 := 6 * (fn*fn - 5*fn + 2) / ((fn + 7) * (fn + 9)) *
		math.Sqrt(6*(fn+3)*(fn+5)/(fn*(fn-2)*(fn-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))

	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	var term2 float64
	if denom == 0 {
		term2 = math.Inf(1)
	} else {
		term2 = math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)
	}
	z := (term1 - term2) / math.Sqrt(2/(9*a))
	return z, TwoSidedNormalPValue(z), nil
}

// DAgostinoK2 runs the D'Agostino-Pearson omnibus normality test combining
// the skewness and kurtosis z-scores: K2 = Zs^2 + Zk^2 ~ chi-square(2) under
// H0. Requires at least 8 values.
func DAgostinoK2(data []float64) (statistic, pvalue float64, err error) {
	if len(data) < 8 {
		return 0, 0, ErrSampleTooSmall
	}
	zs, _, err := SkewTest(data)
	if err != nil {
		return 0, 0, err
	}
	zk, _, err := KurtosisTest(data)
	if err != nil {
		return 0, 0, err
	}
	k2 := zs*zs + zk*zk
	return k2, ChiSquarePValue(k2, 2), nil
}

func isConstant(data []float64) bool {
	for _, x := range data[1:] {
		if x != data[0] {
			return false
		}
	}
	return true
}
