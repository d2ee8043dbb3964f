package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NormalCDF computes the cumulative distribution function of the standard
// normal distribution.
func NormalCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormalQuantile computes the quantile function of the standard normal
// distribution (inverse CDF).
func NormalQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// TwoSidedNormalPValue converts a z-score into a two-tailed p-value.
func TwoSidedNormalPValue(z float64) float64 {
	return clampP(2 * (1 - distuv.UnitNormal.CDF(math.Abs(z))))
}

// ChiSquarePValue computes the upper-tail p-value for a chi-square statistic.
func ChiSquarePValue(chiSquare float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return clampP(1 - chiDist.CDF(chiSquare))
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
