// Package analysis holds the numeric building blocks of the exploration
// pipeline: central moments, normality statistics and the distribution
// helpers that turn them into p-values.
package analysis

import "math"

// Skewness computes the third standardized moment using the population
// convention: g1 = m3 / m2^(3/2) with m_k the k-th central moment over n.
// The same convention feeds SkewTest, so the descriptive value and the test
// statistic always agree.
func Skewness(data []float64) float64 {
	n := float64(len(data))
	if n < 2 {
		return 0
	}
	mean := meanOf(data)
	m2, m3 := 0.0, 0.0
	for _, x := range data {
		d := x - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	return m3 / math.Pow(m2, 1.5)
}

// Kurtosis computes the fourth standardized moment b2 = m4 / m2^2 (not
// excess kurtosis; a normal distribution scores 3).
func Kurtosis(data []float64) float64 {
	n := float64(len(data))
	if n < 2 {
		return 0
	}
	mean := meanOf(data)
	m2, m4 := 0.0, 0.0
	for _, x := range data {
		d := x - mean
		d2 := d * d
		m2 += d2
		m4 += d2 * d2
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0
	}
	return m4 / (m2 * m2)
}

func meanOf(data []float64) float64 {
	sum := 0.0
	for _, x := range data {
		sum += x
	}
	return sum / float64(len(data))
}
