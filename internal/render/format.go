// Package render turns exploration reports into styled terminal text and
// provides the numeric formatting shared by every report fragment.
package render

import (
	"strconv"
	"strings"
)

// FormatFloat renders v with comma thousands-separators and the given number
// of decimal places.
func FormatFloat(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	return sign + groupThousands(intPart) + fracPart
}

// FormatCount renders a non-negative integer with comma thousands-separators.
func FormatCount(n int) string {
	return FormatFloat(float64(n), 0)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
