// Package floatfmt renders floats the way motion-control files have always
// carried them: the shortest round-trip decimal, always with a fractional part,
// and scientific notation outside [1e-4, 1e16).
package floatfmt

import (
	"math"
	"strconv"
	"strings"
)

const (
	minFixedExp = -4
	maxFixedExp = 16
)

// Repr returns the shortest text that parses back to v.
//
//	Repr(0)        == "0.0"
//	Repr(90)       == "90.0"
//	Repr(0.00001)  == "1e-05"
//	Repr(1e16)     == "1e+16"
func Repr(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expText)
	if err != nil {
		return sci
	}

	if exp < minFixedExp || exp >= maxFixedExp {
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		expDigits := strconv.Itoa(exp)
		if len(expDigits) < 2 {
			expDigits = "0" + expDigits
		}
		return mantissa + "e" + sign + expDigits
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

// Int renders whole numbers such as frame counts.
func Int(v int) string {
	return strconv.Itoa(v)
}
