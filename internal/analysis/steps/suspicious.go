package steps

import (
	"math"

	"goexplore/domain/explore"
	"goexplore/internal/render"
)

// IntegerBound is one entry of the suspicious-value catalog: a signed or
// unsigned integer boundary whose appearance in data commonly signals an
// error, an overflow condition or a missing-value placeholder.
type IntegerBound struct {
	Number     float64
	Equivalent string // power-of-two notation, e.g. "2^16-1"
	Location   string // "highest" or "lowest"
	Sign       string // "a signed" or "an unsigned"
	Bits       int
	MinMax     string // "min" or "max"
}

// integerBounds lists the min/max representable integers for the common bit
// widths. Values live in float64 space, the same space parsed data ends up
// in, so membership checks compare like with like. Read-only after init.
var integerBounds = []IntegerBound{
	// 8-bit
	{-128, "-(2^7)", "lowest", "a signed", 8, "min"},
	{127, "2^7-1", "highest", "a signed", 8, "max"},
	{255, "2^8-1", "highest", "an unsigned", 8, "max"},
	// 16-bit
	{-32768, "-(2^15)", "lowest", "a signed", 16, "min"},
	{32767, "2^15-1", "highest", "a signed", 16, "max"},
	{65535, "2^16-1", "highest", "an unsigned", 16, "max"},
	// 32-bit
	{-2147483648, "-(2^31)", "lowest", "a signed", 32, "min"},
	{2147483647, "2^31-1", "highest", "a signed", 32, "max"},
	{4294967295, "2^32-1", "highest", "an unsigned", 32, "max"},
	// 64-bit
	{-math.Ldexp(1, 63), "-(2^63)", "lowest", "a signed", 64, "min"},
	{math.Ldexp(1, 63) - 1, "2^63-1", "highest", "a signed", 64, "max"},
	{math.Ldexp(1, 64) - 1, "2^64-1", "highest", "an unsigned", 64, "max"},
	// 128-bit
	{-math.Ldexp(1, 127), "-(2^127)", "lowest", "a signed", 128, "min"},
	{math.Ldexp(1, 127) - 1, "2^127-1", "highest", "a signed", 128, "max"},
	{math.Ldexp(1, 128) - 1, "2^128-1", "highest", "an unsigned", 128, "max"},
}

// allNineSentinels lists the repunit-style values often used as manual
// missing-value markers.
var allNineSentinels = []float64{99, 999, 9999, 99999, 999999, 9999999}

// IntegerBoundCatalog returns the integer-bound catalog in scan order.
// Callers must treat it as read-only.
func IntegerBoundCatalog() []IntegerBound { return integerBounds }

// SuspiciousValueScan checks every sample value against the catalog of
// sentinel numbers. Absence of matches yields no fragments; that is not a
// precondition failure.
type SuspiciousValueScan struct{}

// NewSuspiciousValueScan creates the suspicious-value scan step.
func NewSuspiciousValueScan() *SuspiciousValueScan { return &SuspiciousValueScan{} }

func (s *SuspiciousValueScan) Name() string { return "Suspicious numbers check" }

func (s *SuspiciousValueScan) MinSize() int { return 1 }

func (s *SuspiciousValueScan) Explore(sample *explore.Sample) []explore.Fragment {
	counts := make(map[float64]int, sample.NonNullCount())
	for _, v := range sample.Values() {
		counts[v]++
	}

	var out []explore.Fragment
	for _, bound := range integerBounds {
		if n, present := counts[bound.Number]; present {
			out = append(out, explore.Warning(
				"%s found %d times. It is suspicious, as it is exactly %s; i.e. the %s "+
					"number that can be represented by %s %d-bit binary number. It is "+
					"therefore the %s value for variables declared as integers in many "+
					"programming language. The appearance of the number may reflect an "+
					"error, overflow condition or missing value.",
				render.FormatFloat(bound.Number, 0), n, bound.Equivalent,
				bound.Location, bound.Sign, bound.Bits, bound.MinMax))
		}
		if float64(sample.OriginalCount()) == bound.Number {
			out = append(out, explore.Warning(
				"Column length is %s. It is suspicious, as it is exactly %s; i.e. the %s "+
					"number that can be represented by %s %d-bit binary number. It is "+
					"therefore the %s value for variables declared as integers in many "+
					"programming language. In the case of column length, it can imply the "+
					"dataset itself was trimmed or sliced.",
				render.FormatFloat(bound.Number, 0), bound.Equivalent,
				bound.Location, bound.Sign, bound.Bits, bound.MinMax))
		}
	}
	for _, nine := range allNineSentinels {
		if n, present := counts[nine]; present {
			out = append(out, explore.Info(
				"%s found %d times. This might be suspicious, as all-9 numbers are often "+
					"used as sentinel values.", render.FormatFloat(nine, 0), n))
		}
	}
	return out
}
