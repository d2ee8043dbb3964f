package analysis

import (
	"math"
	"sort"
)

// ShapiroWilk computes the Shapiro-Wilk W statistic and its p-value using
// Royston's AS R94 approximation (Royston 1995), the same algorithm behind
// the common scientific stacks. H0: the data comes from a normal
// distribution. Valid for 3 <= n; the approximation degrades above a few
// thousand values, which callers guard with an upper size precondition.
func ShapiroWilk(data []float64) (w, pvalue float64, err error) {
	n := len(data)
	if n < 3 {
		return 0, 0, ErrSampleTooSmall
	}
	if isConstant(data) {
		return 0, 0, ErrZeroVariance
	}

	x := make([]float64, n)
	copy(x, data)
	sort.Float64s(x)

	weights := shapiroWeights(n)

	mean := meanOf(x)
	num, den := 0.0, 0.0
	for i, v := range x {
		num += weights[i] * v
		d := v - mean
		den += d * d
	}
	w = num * num / den
	if w > 1 {
		w = 1
	}

	return w, shapiroPValue(w, n), nil
}

// shapiroWeights returns the approximate normalized best linear unbiased
// coefficients a_1..a_n of AS R94.
func shapiroWeights(n int) []float64 {
	a := make([]float64, n)
	if n == 3 {
		a[0] = -math.Sqrt(0.5)
		a[2] = math.Sqrt(0.5)
		return a
	}

	// Expected values of normal order statistics (Blom approximation).
	m := make([]float64, n)
	ssm := 0.0
	for i := 0; i < n; i++ {
		m[i] = NormalQuantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		ssm += m[i] * m[i]
	}

	u := 1 / math.Sqrt(float64(n))
	rss := math.Sqrt(ssm)
	an := polyval([]float64{-2.706056, 4.434685, -2.071190, -0.147981, 0.221157, 0}, u) + m[n-1]/rss

	var phi float64
	if n > 5 {
		an1 := polyval([]float64{-3.582633, 5.682633, -1.752461, -0.293762, 0.042981, 0}, u) + m[n-2]/rss
		phi = (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		a[n-1], a[0] = an, -an
		a[n-2], a[1] = an1, -an1
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	} else {
		phi = (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		a[n-1], a[0] = an, -an
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	}
	return a
}

// shapiroPValue normalizes W per Royston 1995 and reads the upper normal tail.
func shapiroPValue(w float64, n int) float64 {
	if n == 3 {
		// Exact small-sample distribution.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Asin(math.Sqrt(0.75)))
		return clampP(p)
	}

	fn := float64(n)
	var z float64
	if n <= 11 {
		gamma := -2.273 + 0.459*fn
		mu := polyval([]float64{-0.0006714, 0.025054, -0.39978, 0.5440}, fn)
		sigma := math.Exp(polyval([]float64{-0.0020322, 0.062767, -0.77857, 1.3822}, fn))
		z = (-math.Log(gamma-math.Log(1-w)) - mu) / sigma
	} else {
		logN := math.Log(fn)
		mu := polyval([]float64{0.0038915, -0.083751, -0.31082, -1.5861}, logN)
		sigma := math.Exp(polyval([]float64{0.0030302, -0.082676, -0.4803}, logN))
		z = (math.Log(1-w) - mu) / sigma
	}
	return clampP(1 - NormalCDF(z))
}

// polyval evaluates a polynomial with coefficients ordered from the highest
// power down to the constant term.
func polyval(coeffs []float64, x float64) float64 {
	v := 0.0
	for _, c := range coeffs {
		v = v*x + c
	}
	return v
}
